package errors

import "sort"

// Codes used across the module.
const (
	CodeConfigurationMissing = "T001"
	CodeInvalidReplacement   = "T002"
	CodeUnknownConverter     = "T003"

	CodeConfigParse    = "T120"
	CodeConfigNotFound = "T121"
	CodeConfigInvalid  = "T122"

	CodeInvalidRequest = "T140"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime (T001-T099)

	CodeConfigurationMissing: {
		Category: CategoryRuntime,
		Message:  "Naming configuration missing",
		Detail:   "Attributes were requested without a NamingConfig in scope.",
	},
	CodeInvalidReplacement: {
		Category: CategoryRender,
		Message:  "Invalid replacement element",
		Detail:   "The replacement is not a renderable element, so nothing is rendered.",
	},
	CodeUnknownConverter: {
		Category: CategoryConfig,
		Message:  "Unknown property-name converter",
		Detail:   "Known converters are: kebab, identity, lower.",
	},

	// Config (T120-T139)

	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Failed to load configuration",
		Detail:   "The configuration file or environment could not be parsed.",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The configuration file passed explicitly does not exist.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// CLI (T140-T159)

	CodeInvalidRequest: {
		Category: CategoryCLI,
		Message:  "Invalid render request",
		Detail:   "The request must be JSON with namespaces, children and an optional replacement.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
