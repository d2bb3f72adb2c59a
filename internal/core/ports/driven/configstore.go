package driven

// Well-known configuration keys. Nested keys use dot notation.
const (
	// ConfigSourceKind selects the source connector: "postgrest" or "postgres".
	ConfigSourceKind = "source.kind"

	// ConfigSourceURL is the PostgREST endpoint or Supabase project URL.
	ConfigSourceURL = "source.url"

	// ConfigSourceKey is the PostgREST API key (Supabase anon or service key).
	ConfigSourceKey = "source.key"

	// ConfigSourceDatabaseURL is the Postgres connection string for the
	// direct-connection source.
	ConfigSourceDatabaseURL = "source.database_url"

	// ConfigSourceSchema is the database schema the direct connection reads.
	ConfigSourceSchema = "source.schema"

	// ConfigCollectionURL is the destination collection API base URL.
	ConfigCollectionURL = "collection.url"

	// ConfigCollectionToken is the destination collection API token.
	ConfigCollectionToken = "collection.token"

	// ConfigCollectionID identifies the managed collection items sync into.
	ConfigCollectionID = "collection.id"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
