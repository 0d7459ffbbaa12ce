package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Theme (E100-E119)

	"E100": {
		Category: CategoryTheme,
		Message:  "Theme is invalid",
		Detail:   "One or more design tokens failed validation. Every ramp step must be a color, every role must resolve to a color or a defined ramp step, and every animation must name defined keyframes.",
	},
	"E101": {
		Category: CategoryTheme,
		Message:  "Theme file could not be parsed",
		Detail:   "The theme file is not valid for its format.",
	},
	"E102": {
		Category: CategoryTheme,
		Message:  "Unknown theme format",
		Detail:   "Theme files must end in .json, .yaml, .yml or .toml. Exports also accept .js and .css.",
	},
	"E103": {
		Category: CategoryTheme,
		Message:  "Theme file not found",
	},
	"E104": {
		Category: CategoryTheme,
		Message:  "Theme export failed",
	},

	// Config (E120-E139)

	"E120": {
		Category: CategoryConfig,
		Message:  "donut.json not found",
		Detail:   "No donut.json was found in the current directory or any parent directory.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "donut.json could not be parsed",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Configuration could not be written",
	},

	// Build (E140-E159)

	"E140": {
		Category: CategoryBuild,
		Message:  "Tailwind binary not available",
		Detail:   "The Tailwind standalone binary could not be found or downloaded.",
	},
	"E141": {
		Category: CategoryBuild,
		Message:  "Tailwind build failed",
	},
	"E142": {
		Category: CategoryBuild,
		Message:  "Output file could not be written",
	},

	// Publish (E160-E179)

	"E160": {
		Category: CategoryPublish,
		Message:  "No publish bucket configured",
		Detail:   "Set publish.bucket in donut.json, pass --bucket, or set DONUT_PUBLISH_BUCKET.",
	},
	"E161": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	"E162": {
		Category: CategoryPublish,
		Message:  "Nothing to publish",
		Detail:   "None of the generated theme files exist. Run donut build first.",
	},
	"E163": {
		Category: CategoryPublish,
		Message:  "Could not load AWS configuration",
		Detail:   "The shared config files or environment could not be read.",
	},

	// Gallery (E180-E199)

	"E180": {
		Category: CategoryGallery,
		Message:  "Unknown component",
	},
	"E181": {
		Category: CategoryGallery,
		Message:  "Invalid component option",
	},
	"E182": {
		Category: CategoryGallery,
		Message:  "Gallery server failed",
	},
	"E183": {
		Category: CategoryGallery,
		Message:  "Page render failed",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
