package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"namefully/src/internal/config"
)

// Snapshot is the exchanged form of a name: its parts plus the field values
// of the configuration it was built with.
type Snapshot struct {
	Names  Names   `yaml:"names" json:"names"`
	Config *Config `yaml:"config,omitempty" json:"config,omitempty"`
}

// Names holds one value per role. Prefix, middle names and suffix are optional.
type Names struct {
	Prefix     string    `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	FirstName  FirstName `yaml:"firstName" json:"firstName"`
	MiddleName []string  `yaml:"middleName,omitempty" json:"middleName,omitempty"`
	LastName   LastName  `yaml:"lastName" json:"lastName"`
	Suffix     string    `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

// Config mirrors config.Values with enums kept as their text form.
type Config struct {
	Name      string `yaml:"name" json:"name"`
	OrderedBy string `yaml:"orderedBy" json:"orderedBy"`
	Separator string `yaml:"separator" json:"separator"`
	Title     string `yaml:"title" json:"title"`
	Ending    bool   `yaml:"ending" json:"ending"`
	Bypass    bool   `yaml:"bypass" json:"bypass"`
	Surname   string `yaml:"surname" json:"surname"`
}

// ConfigOf captures v for serialization.
func ConfigOf(v config.Values) *Config {
	return &Config{
		Name:      v.Name,
		OrderedBy: string(v.OrderedBy),
		Separator: string(v.Separator),
		Title:     string(v.Title),
		Ending:    v.Ending,
		Bypass:    v.Bypass,
		Surname:   string(v.Surname),
	}
}

// Options converts c back to configuration options. Empty enum fields are
// left unset; the booleans are always applied.
func (c *Config) Options() (config.Options, error) {
	var o config.Options
	if c == nil {
		return o, nil
	}
	o.Name = c.Name
	var err error
	if c.OrderedBy != "" {
		if o.OrderedBy, err = config.ParseOrder(c.OrderedBy); err != nil {
			return o, err
		}
	}
	if c.Separator != "" {
		if o.Separator, err = config.ParseSeparator(c.Separator); err != nil {
			return o, err
		}
	}
	if c.Title != "" {
		if o.Title, err = config.ParseTitle(c.Title); err != nil {
			return o, err
		}
	}
	if c.Surname != "" {
		if o.Surname, err = config.ParseSurname(c.Surname); err != nil {
			return o, err
		}
	}
	o.Ending = config.Bool(c.Ending)
	o.Bypass = config.Bool(c.Bypass)
	return o, nil
}

// FirstName is written as a bare string unless it carries extra given names.
type FirstName struct {
	Value string
	More  []string
}

type firstNameObject struct {
	Value string   `yaml:"value" json:"value"`
	More  []string `yaml:"more,omitempty" json:"more,omitempty"`
}

func (f FirstName) object() any {
	if len(f.More) == 0 {
		return f.Value
	}
	return firstNameObject{Value: f.Value, More: f.More}
}

func (f FirstName) MarshalYAML() (any, error) { return f.object(), nil }

func (f FirstName) MarshalJSON() ([]byte, error) { return json.Marshal(f.object()) }

func (f *FirstName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*f = FirstName{Value: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var o firstNameObject
		if err := value.Decode(&o); err != nil {
			return err
		}
		*f = FirstName{Value: strings.TrimSpace(o.Value), More: o.More}
		return nil
	}
	return fmt.Errorf("firstName: expected a string or an object at line %d", value.Line)
}

func (f *FirstName) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FirstName{Value: strings.TrimSpace(s)}
		return nil
	}
	var o firstNameObject
	if err := json.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("firstName: %w", err)
	}
	*f = FirstName{Value: strings.TrimSpace(o.Value), More: o.More}
	return nil
}

// LastName is written as a bare string unless it has a mother surname.
type LastName struct {
	Father string
	Mother string
}

type lastNameObject struct {
	Father string `yaml:"father" json:"father"`
	Mother string `yaml:"mother,omitempty" json:"mother,omitempty"`
}

func (l LastName) object() any {
	if l.Mother == "" {
		return l.Father
	}
	return lastNameObject{Father: l.Father, Mother: l.Mother}
}

func (l LastName) MarshalYAML() (any, error) { return l.object(), nil }

func (l LastName) MarshalJSON() ([]byte, error) { return json.Marshal(l.object()) }

func (l *LastName) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = LastName{Father: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var o lastNameObject
		if err := value.Decode(&o); err != nil {
			return err
		}
		*l = LastName{Father: strings.TrimSpace(o.Father), Mother: strings.TrimSpace(o.Mother)}
		return nil
	}
	return fmt.Errorf("lastName: expected a string or an object at line %d", value.Line)
}

func (l *LastName) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LastName{Father: strings.TrimSpace(s)}
		return nil
	}
	var o lastNameObject
	if err := json.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("lastName: %w", err)
	}
	*l = LastName{Father: strings.TrimSpace(o.Father), Mother: strings.TrimSpace(o.Mother)}
	return nil
}

// Validate checks the two required roles.
func (s Snapshot) Validate() error {
	if strings.TrimSpace(s.Names.FirstName.Value) == "" {
		return fmt.Errorf("names.firstName is required")
	}
	if strings.TrimSpace(s.Names.LastName.Father) == "" {
		return fmt.Errorf("names.lastName is required")
	}
	return nil
}

// Map returns s as nested plain maps, the shape used for TOML and for
// key-value parsing.
func (s Snapshot) Map() map[string]any {
	n := map[string]any{
		"firstName": s.Names.FirstName.mapValue(),
		"lastName":  s.Names.LastName.mapValue(),
	}
	if s.Names.Prefix != "" {
		n["prefix"] = s.Names.Prefix
	}
	if len(s.Names.MiddleName) > 0 {
		n["middleName"] = append([]string(nil), s.Names.MiddleName...)
	}
	if s.Names.Suffix != "" {
		n["suffix"] = s.Names.Suffix
	}
	out := map[string]any{"names": n}
	if c := s.Config; c != nil {
		out["config"] = map[string]any{
			"name":      c.Name,
			"orderedBy": c.OrderedBy,
			"separator": c.Separator,
			"title":     c.Title,
			"ending":    c.Ending,
			"bypass":    c.Bypass,
			"surname":   c.Surname,
		}
	}
	return out
}

func (f FirstName) mapValue() any {
	if len(f.More) == 0 {
		return f.Value
	}
	return map[string]any{"value": f.Value, "more": append([]string(nil), f.More...)}
}

func (l LastName) mapValue() any {
	if l.Mother == "" {
		return l.Father
	}
	return map[string]any{"father": l.Father, "mother": l.Mother}
}

// FromMap reads a snapshot out of decoded generic data. A map without a
// "names" key is taken to be the names section alone.
func FromMap(m map[string]any) (Snapshot, error) {
	if _, ok := m["names"]; !ok {
		m = map[string]any{"names": m}
	}
	raw, err := yaml.Marshal(m)
	if err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, err
	}
	return s, s.Validate()
}

// Decode parses a YAML or JSON document.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return s, fmt.Errorf("empty snapshot")
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Snapshot{}, err
		}
	} else if err := yaml.Unmarshal(trimmed, &s); err != nil {
		return Snapshot{}, err
	}
	return s, s.Validate()
}

// DecodeTOML parses a TOML document.
func DecodeTOML(data []byte) (Snapshot, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return Snapshot{}, err
	}
	return FromMap(m)
}

// Format names an encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported format: %q", s)
}

// Encode writes s in the given format.
func (s Snapshot) Encode(f Format) ([]byte, error) {
	switch f {
	case JSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case YAML:
		return yaml.Marshal(s)
	case TOML:
		return toml.Marshal(s.Map())
	}
	return nil, fmt.Errorf("unsupported format: %q", f)
}

// DecodeFormat parses data written in format f.
func DecodeFormat(data []byte, f Format) (Snapshot, error) {
	if f == TOML {
		return DecodeTOML(data)
	}
	return Decode(data)
}
