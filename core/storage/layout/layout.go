package layout

// Space is a logical area inside a bucket. Live objects go under FlowDir;
// when Backup is set every upload is also copied, timestamped, under BackupDir.
type Space struct {
	Name      string `yaml:"name" json:"name" validate:"required,excludesall=/"`
	FlowDir   string `yaml:"flow_dir" json:"flow_dir" validate:"required,excludesall=/"`
	BackupDir string `yaml:"backup_dir" json:"backup_dir" validate:"required_if=Backup true,excludesall=/"`
	Backup    bool   `yaml:"backup" json:"backup"`
}

// Bucket groups the spaces provisioned inside one object storage bucket.
type Bucket struct {
	Name   string  `yaml:"name" json:"name" validate:"required,bucketname"`
	Spaces []Space `yaml:"spaces" json:"spaces" validate:"unique=Name,dive"`
}

// Layout is the full bucket/space configuration.
type Layout struct {
	Buckets []Bucket `yaml:"buckets" json:"buckets" validate:"required,min=1,unique=Name,dive"`
}

// SpaceRef identifies a space within a bucket.
type SpaceRef struct {
	Bucket string `json:"bucket"`
	Space  string `json:"space"`
}

const (
	defaultFlowDir   = "flow-dir"
	defaultBackupDir = "backup-dir"
)

// DefaultBuckets are the medallion tiers provisioned out of the box.
var DefaultBuckets = []string{"bucket-bronze", "bucket-silver", "bucket-gold"}

// DefaultSpaces are the source areas present in every default bucket.
var DefaultSpaces = []string{
	"space-site-quotes",
	"space-site-books",
	"space-api-address",
	"space-xslt-bookstores",
}

// Default returns the built-in layout: every default bucket holds every default
// space, each with a flow and a backup directory and backups enabled.
func Default() Layout {
	l := Layout{Buckets: make([]Bucket, 0, len(DefaultBuckets))}
	for _, b := range DefaultBuckets {
		bucket := Bucket{Name: b, Spaces: make([]Space, 0, len(DefaultSpaces))}
		for _, s := range DefaultSpaces {
			bucket.Spaces = append(bucket.Spaces, Space{
				Name:      s,
				FlowDir:   defaultFlowDir,
				BackupDir: defaultBackupDir,
				Backup:    true,
			})
		}
		l.Buckets = append(l.Buckets, bucket)
	}
	return l
}
