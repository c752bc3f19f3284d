// Package lake places pipeline artifacts into the object store.
//
// The store follows a static layout of buckets and spaces (see core/storage/layout).
// Every space owns a flow folder holding the live copy of each object and, when
// backups are enabled, a backup folder receiving a timestamped copy on every upload:
//
//	<space>/<flow dir>/<name>
//	<space>/<backup dir>/<stem>-<YYYYMMDD_HHMMSS_mmm><ext>
//
// Local files are staged in a single folder before upload and after download.
//
// # HTTP Endpoints
//
//   - GET /lake/layout : Returns the configured layout.
//   - POST /lake/init : Provisions buckets and folders.
//   - GET /lake/status : Reports missing buckets and folders.
//   - GET /lake/:bucket/objects : Lists objects (supports ?prefix=).
//   - POST /lake/:bucket/:space/objects : Uploads a multipart file.
//   - GET, DELETE /lake/:bucket/:space/flow/:name and /backup/:name : Download or delete.
//   - POST /lake/reset?confirm=yes : Wipes the object store when allowed.
package lake
