package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `swatch config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Swatch + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.TypeName(),
	})
}

// TypeName names the type of the default value.
func (f *Field) TypeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Parse converts raw into the type of the field's default value.
func (f *Field) Parse(raw string) (any, error) {
	switch f.Value.(type) {
	case string:
		return raw, nil
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer: %w", f.Key, err)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean: %w", f.Key, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%s has an unsupported type", f.Key)
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ExportPath, "", "Path of the exported PNG.\nWhen empty, ~/Desktop/palettes, ~/Desktop and the swatch data directory are tried in that order")
	register(key.ExportFilename, "palette-0.png", "File name used when export.path is empty.\nAn existing file with the same name is overwritten")
	register(key.ExportResolution, 16, "Side length in pixels of one swatch in the exported image")
	register(key.ExportJSON, false, "Also write a JSON description next to the PNG")
	register(key.ExportStrict, false, "Exit with status 1 when the export fails")
	register(key.ExportOpen, false, "Open the exported PNG with the system image viewer")
	register(key.ExportOpenWith, "", "Application used to open exported palettes.\nWhen empty the system default handler is used")
	register(key.PalettePerChannelTint, false, "Weight each channel by its own tint ratio.\nWhen false every channel is weighted by the red ratio")
	register(key.HistorySaveOnExport, true, "Remember exported palettes")
	register(key.TUITickMs, 16, "Milliseconds between two input ticks of the interactive wizard")
	register(key.TUIShowHelp, true, "Show key bindings under the wizard")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")

	if len(Default) != key.DefinedFieldsCount {
		panic(fmt.Sprintf("registered %d config fields, expected %d", len(Default), key.DefinedFieldsCount))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			if value == "" {
				return style.Faint(`""`)
			}
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
