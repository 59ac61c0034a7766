package records

// Config selects where records are kept.
type Config struct {
	// Driver is json, mysql or sqlite. mysql and sqlite use the database section.
	Driver string `mapstructure:"driver" default:"json"`
	// DBFile is the record file name inside the output directory.
	DBFile string `mapstructure:"db_file" default:"loadingscreens-db.json"`
	// BasicFile is the public document name inside the output directory.
	BasicFile string `mapstructure:"basic_file" default:"loadingscreens.json"`
}

const (
	DriverJSON   = "json"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
