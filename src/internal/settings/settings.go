// Package settings resolves the CLI's configuration options. Layers apply in
// order, each overriding the last: defaults, a config file, NAMEFULLY_*
// environment variables, then flags the user actually set.
package settings

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"namefully/src/internal/config"
	"namefully/src/internal/stringsx"
)

// FileName is the config file looked up in Dir when File is empty. Any
// extension viper reads (yaml, json, toml) is accepted.
const FileName = ".namefully"

// Flag names shared with the CLI.
const (
	FlagConfig    = "config"
	FlagName      = "profile"
	FlagOrder     = "order"
	FlagSeparator = "separator"
	FlagTitle     = "title"
	FlagEnding    = "ending"
	FlagBypass    = "bypass"
	FlagSurname   = "surname"
)

// Env is the environment layer.
type Env struct {
	Name      string `env:"NAMEFULLY_PROFILE"`
	Order     string `env:"NAMEFULLY_ORDER"`
	Separator string `env:"NAMEFULLY_SEPARATOR"`
	Title     string `env:"NAMEFULLY_TITLE"`
	Ending    *bool  `env:"NAMEFULLY_ENDING"`
	Bypass    *bool  `env:"NAMEFULLY_BYPASS"`
	Surname   string `env:"NAMEFULLY_SURNAME"`
}

type Settings struct {
	// File is an explicit config file; it must exist when set.
	File string
	// Dir is searched for FileName when File is empty. Empty means ".".
	Dir string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
	// Flags are read for values the user changed.
	Flags *pflag.FlagSet
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "config file (default ./"+FileName+".{yaml,json,toml})")
	fs.String(FlagName, "", "configuration profile name")
	fs.String(FlagOrder, "", "name order: firstName or lastName")
	fs.String(FlagSeparator, "", "separator name or character used to split names")
	fs.String(FlagTitle, "", "title style: UK or US")
	fs.Bool(FlagEnding, false, "comma before the suffix")
	fs.Bool(FlagBypass, true, "skip content validation")
	fs.String(FlagSurname, "", "surname style: father, mother, hyphenated or all")
}

// layer is one source's raw values; blank strings and nil pointers are unset.
type layer struct {
	Name, Order, Separator, Title, Surname string
	Ending, Bypass                         *bool
}

func (l *layer) over(o layer) {
	set := func(dst *string, v string) { *dst = stringsx.FirstNonEmpty(v, *dst) }
	set(&l.Name, o.Name)
	set(&l.Order, o.Order)
	// a separator may be given as its token, and " " is a valid one
	if o.Separator != "" {
		l.Separator = o.Separator
	}
	set(&l.Title, o.Title)
	set(&l.Surname, o.Surname)
	if o.Ending != nil {
		l.Ending = o.Ending
	}
	if o.Bypass != nil {
		l.Bypass = o.Bypass
	}
}

// Load merges all layers into configuration options.
func (s Settings) Load() (config.Options, error) {
	var merged layer
	if s.File == "" && s.Flags != nil {
		if f := s.Flags.Lookup(FlagConfig); f != nil && f.Changed {
			s.File = f.Value.String()
		}
	}
	fileLayer, err := s.readFile()
	if err != nil {
		return config.Options{}, err
	}
	merged.over(fileLayer)

	envLayer, err := s.readEnv()
	if err != nil {
		return config.Options{}, err
	}
	merged.over(envLayer)

	flagLayer, err := s.readFlags()
	if err != nil {
		return config.Options{}, err
	}
	merged.over(flagLayer)
	return merged.options()
}

func (s Settings) readFile() (layer, error) {
	v := viper.New()
	if s.File != "" {
		v.SetConfigFile(s.File)
	} else {
		dir := s.Dir
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(FileName)
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if s.File == "" && errors.As(err, &notFound) {
			return layer{}, nil
		}
		return layer{}, fmt.Errorf("read config file: %w", err)
	}
	var l layer
	l.Name = v.GetString("name")
	l.Order = v.GetString("order")
	l.Separator = v.GetString("separator")
	l.Title = v.GetString("title")
	l.Surname = v.GetString("surname")
	if v.IsSet("ending") {
		l.Ending = config.Bool(v.GetBool("ending"))
	}
	if v.IsSet("bypass") {
		l.Bypass = config.Bool(v.GetBool("bypass"))
	}
	return l, nil
}

func (s Settings) readEnv() (layer, error) {
	var e Env
	opts := env.Options{}
	if s.Environ != nil {
		opts.Environment = s.Environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return layer{}, fmt.Errorf("parse env: %w", err)
	}
	return layer{
		Name:      e.Name,
		Order:     e.Order,
		Separator: e.Separator,
		Title:     e.Title,
		Surname:   e.Surname,
		Ending:    e.Ending,
		Bypass:    e.Bypass,
	}, nil
}

func (s Settings) readFlags() (layer, error) {
	var l layer
	fs := s.Flags
	if fs == nil {
		return l, nil
	}
	str := func(name string, dst *string) error {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v, err := fs.GetString(name)
			if err != nil {
				return err
			}
			*dst = v
		}
		return nil
	}
	boolean := func(name string, dst **bool) error {
		if f := fs.Lookup(name); f != nil && f.Changed {
			v, err := fs.GetBool(name)
			if err != nil {
				return err
			}
			*dst = config.Bool(v)
		}
		return nil
	}
	for _, err := range []error{
		str(FlagName, &l.Name),
		str(FlagOrder, &l.Order),
		str(FlagSeparator, &l.Separator),
		str(FlagTitle, &l.Title),
		str(FlagSurname, &l.Surname),
		boolean(FlagEnding, &l.Ending),
		boolean(FlagBypass, &l.Bypass),
	} {
		if err != nil {
			return layer{}, fmt.Errorf("read flags: %w", err)
		}
	}
	return l, nil
}

func (l layer) options() (config.Options, error) {
	o := config.Options{Name: l.Name, Ending: l.Ending, Bypass: l.Bypass}
	var err error
	if l.Order != "" {
		if o.OrderedBy, err = config.ParseOrder(l.Order); err != nil {
			return o, fmt.Errorf("order: %w", err)
		}
	}
	if l.Separator != "" {
		if o.Separator, err = config.ParseSeparator(l.Separator); err != nil {
			return o, fmt.Errorf("separator: %w", err)
		}
	}
	if l.Title != "" {
		if o.Title, err = config.ParseTitle(l.Title); err != nil {
			return o, fmt.Errorf("title: %w", err)
		}
	}
	if l.Surname != "" {
		if o.Surname, err = config.ParseSurname(l.Surname); err != nil {
			return o, fmt.Errorf("surname: %w", err)
		}
	}
	return o, nil
}
