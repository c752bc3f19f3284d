// Package layout describes which buckets and spaces exist in the object store
// and resolves the directory names used inside them.
//
// Each bucket holds spaces; a space owns a flow directory (the live copy of every
// artifact) and, when backups are enabled, a backup directory receiving timestamped
// copies. Object keys therefore look like:
//
//	<bucket>/<space>/<flow dir>/<object>
//	<bucket>/<space>/<backup dir>/<stem>-<timestamp><ext>
//
// Default() returns the built-in bronze/silver/gold layout. Load() accepts an
// optional YAML override:
//
//	buckets:
//	  - name: bucket-bronze
//	    spaces:
//	      - name: space-site-quotes
//	        flow_dir: flow-dir
//	        backup_dir: backup-dir
//	        backup: true
//
// Lookups are plain linear scans; layouts are small and immutable.
package layout
