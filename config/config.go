package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/compiler/gen"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
)

// DefaultFile is the settings file looked up in the project root.
const DefaultFile = "scaffold.yaml"

// File mirrors scaffold.yaml. Unset keys keep the generator defaults.
type File struct {
	APIVersion     string      `yaml:"api_version,omitempty"`
	RouteMarker    string      `yaml:"route_marker,omitempty"`
	RouteFile      string      `yaml:"route_file,omitempty"`
	Middleware     *StringList `yaml:"middleware,omitempty"`
	Sensitive      StringList  `yaml:"sensitive,omitempty"`
	StubsDir       string      `yaml:"stubs_dir,omitempty"`
	ModelsDir      string      `yaml:"models_dir,omitempty"`
	ModelNamespace string      `yaml:"model_namespace,omitempty"`
	CacheTTL       *int        `yaml:"cache_ttl,omitempty"`
	Export         Export      `yaml:"export,omitempty"`
	CatalogOnly    bool        `yaml:"catalog_only,omitempty"`
	Workers        int         `yaml:"workers,omitempty"`
}

// Export holds the export settings.
type Export struct {
	PDFView string `yaml:"pdf_view,omitempty"`
}

// StringList is a YAML value that is either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			*s = StringList{}
			return nil
		}
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// Settings is the loaded configuration of one project.
type Settings struct {
	Root string
	File File
	DB   sql.Params
}

// Load reads the settings of the project at root. An empty path looks up
// DefaultFile in root and tolerates its absence; an explicit path must
// exist. A missing .env leaves the connection to the environment.
func Load(root, path string) (*Settings, error) {
	if root == "" {
		root = "."
	}
	s := &Settings{Root: root}
	optional := path == ""
	if optional {
		path = filepath.Join(root, DefaultFile)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	f, err := loadFile(path, optional)
	if err != nil {
		return nil, err
	}
	s.File = *f

	env, err := godotenv.Read(filepath.Join(root, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	s.DB = params(env)
	return s, nil
}

func loadFile(path string, optional bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// defaultConnection is the connection of a fresh Laravel project.
const defaultConnection = "sqlite"

// params resolves the connection keys, the process environment first.
func params(env map[string]string) sql.Params {
	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return env[key]
	}
	conn := get("DB_CONNECTION")
	if conn == "" {
		conn = defaultConnection
	}
	return sql.Params{
		Connection: conn,
		Host:       get("DB_HOST"),
		Port:       get("DB_PORT"),
		Database:   get("DB_DATABASE"),
		Username:   get("DB_USERNAME"),
		Password:   get("DB_PASSWORD"),
	}
}

// DSN returns the dialect and data source name of the project database.
func (s *Settings) DSN() (string, string, error) {
	return sql.DSN(s.Root, s.DB)
}

// Options returns the generator options of the settings.
func (s *Settings) Options() []gen.Option {
	f := s.File
	opts := []gen.Option{gen.WithRoot(s.Root)}
	add := func(set bool, opt gen.Option) {
		if set {
			opts = append(opts, opt)
		}
	}
	add(f.APIVersion != "", gen.WithAPIVersion(f.APIVersion))
	add(f.RouteMarker != "", gen.WithRouteMarker(f.RouteMarker))
	add(f.RouteFile != "", gen.WithRouteFile(f.RouteFile))
	if f.Middleware != nil {
		opts = append(opts, gen.WithMiddleware(*f.Middleware...))
	}
	add(f.Sensitive != nil, gen.WithSensitive(f.Sensitive...))
	add(f.StubsDir != "", gen.WithStubsDir(f.StubsDir))
	add(f.ModelsDir != "", gen.WithModelsDir(f.ModelsDir))
	add(f.ModelNamespace != "", gen.WithModelNamespace(f.ModelNamespace))
	if f.CacheTTL != nil {
		opts = append(opts, gen.WithCacheTTL(*f.CacheTTL))
	}
	add(f.Export.PDFView != "", gen.WithExportView(f.Export.PDFView))
	return opts
}
