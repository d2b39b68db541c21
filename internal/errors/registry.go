package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E101": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No treesite.yaml or treesite.json was found in the working directory or any parent directory.",
		Suggestion: "Run the command from your site root or pass --config",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "The configuration file could not be parsed.",
		Suggestion: "Check the YAML or JSON syntax near the reported line",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or not one of the accepted values.",
	},
	"E110": {
		Category:   CategoryContent,
		Message:    "Content directory not found",
		Detail:     "The content directory does not exist or is not a directory.",
		Suggestion: "Create the directory or set content in treesite.yaml",
	},
	"E111": {
		Category: CategoryContent,
		Message:  "Invalid front matter",
		Detail:   "The YAML block between the leading --- lines of a Markdown file could not be parsed.",
	},
	"E112": {
		Category: CategoryContent,
		Message:  "Markdown conversion failed",
	},

	// ============================================
	// Build Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryBuild,
		Message:  "Site build failed",
		Detail:   "A build phase returned an error. The phase and page are shown below.",
	},
	"E202": {
		Category:   CategoryBuild,
		Message:    "Duplicate page path",
		Detail:     "Two pages were registered at the same path.",
		Suggestion: "Set a distinct path in the front matter of one of the files",
	},
	"E203": {
		Category: CategoryBuild,
		Message:  "Export path collision",
		Detail:   "Two pages or files resolve to the same export path, for example /about and /about.html.",
	},
	"E204": {
		Category: CategoryBuild,
		Message:  "Invalid processor stage",
	},
	"E205": {
		Category:   CategoryBuild,
		Message:    "Unknown build strategy",
		Suggestion: "Use sync or parallel",
	},
	"E206": {
		Category: CategoryBuild,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must not contain whitespace, quotes, '>', '/' or '='.",
	},
	"E207": {
		Category: CategoryBuild,
		Message:  "Value cannot be rendered",
		Detail:   "A leaf of the expanded tree is neither text nor a node with a Render method.",
	},
	"E208": {
		Category: CategoryBuild,
		Message:  "Build cancelled",
	},

	// ============================================
	// Export Errors (E300-E399)
	// ============================================

	"E301": {
		Category:   CategoryExport,
		Message:    "Export root is not set",
		Suggestion: "Set output in treesite.yaml or pass --output",
	},
	"E302": {
		Category: CategoryExport,
		Message:  "Export root is not a directory",
		Detail:   "The export root exists but is a file or a broken symbolic link.",
	},
	"E303": {
		Category: CategoryExport,
		Message:    "Failed to write file",
		Suggestion: "Check that the output directory is writable and has free space",
	},
	"E304": {
		Category:   CategoryExport,
		Message:    "S3 upload failed",
		Suggestion: "Check the AWS credentials (environment, ~/.aws files or role) and the bucket region",
	},

	// ============================================
	// Preview Server Errors (E400-E499)
	// ============================================

	"E401": {
		Category:   CategoryDev,
		Message:    "Preview server failed",
		Suggestion: "Try a different port with --port",
	},
	"E402": {
		Category: CategoryDev,
		Message:  "File watcher failed",
	},

	// ============================================
	// CLI Errors (E500-E599)
	// ============================================

	"E501": {
		Category:   CategoryCLI,
		Message:    "Invalid command usage",
		Suggestion: "Run 'treesite --help' for usage",
	},
	"E502": {
		Category:   CategoryCLI,
		Message:    "Unknown example",
		Suggestion: "Run 'treesite examples' to list the available examples",
	},
	"E503": {
		Category:   CategoryCLI,
		Message:    "Project already initialized",
		Suggestion: "Edit the existing configuration file instead",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
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
