// Package quotes implements the extract and raw load steps of the quotes ETL.
//
// The Scraper walks the paginated quotes site with goquery, retrying failed
// fetches with exponential backoff and pausing between pages. The Pipeline
// stamps every quote with a run id, writes the batch as a JSONL artifact into
// the lake staging folder, saves the rows through the Repository and places the
// artifact into its configured bucket and space.
//
// # HTTP Endpoints
//
//   - POST /quotes/run : Runs the pipeline (supports ?pages=).
//   - GET /quotes : Lists the latest stored quotes (supports ?limit=).
package quotes
