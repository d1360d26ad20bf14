package tree

// Config names the distinguished fields of a Node.
type Config struct {
	IDField       string `env:"TREE_ID_FIELD" envDefault:"id"`
	ParentIDField string `env:"TREE_PARENT_ID_FIELD" envDefault:"parentId"`
	ChildrenField string `env:"TREE_CHILDREN_FIELD" envDefault:"children"`
}

// Option configures a conversion call.
type Option func(*Config)

// DefaultConfig returns the field names used when no option overrides them.
func DefaultConfig() Config {
	return Config{
		IDField:       "id",
		ParentIDField: "parentId",
		ChildrenField: "children",
	}
}

// WithIDField sets the identifier field name. Empty names are ignored.
func WithIDField(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.IDField = name
		}
	}
}

// WithParentIDField sets the parent identifier field name. Empty names are ignored.
func WithParentIDField(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.ParentIDField = name
		}
	}
}

// WithChildrenField sets the children field name. Empty names are ignored.
func WithChildrenField(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.ChildrenField = name
		}
	}
}

// WithConfig applies every non-empty field name of cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		WithIDField(cfg.IDField)(c)
		WithParentIDField(cfg.ParentIDField)(c)
		WithChildrenField(cfg.ChildrenField)(c)
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
