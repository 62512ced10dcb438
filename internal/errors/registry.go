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
	// Config Errors (R001-R009)
	// ============================================

	"R001": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Detail:     "The routegen configuration file could not be parsed or contains invalid values.",
		Suggestion: "Check routegen.json against the documented fields (pagesDir, outFile, typesFile, extensions, dev).",
	},
	"R002": {
		Category:   CategoryConfig,
		Message:    "Invalid file extension",
		Detail:     "Page file extensions must start with a dot, e.g. \".tsx\".",
		Suggestion: "Use extensions like [\".tsx\", \".jsx\"] in routegen.json.",
	},

	// ============================================
	// Scan Errors (R010-R019)
	// ============================================

	"R010": {
		Category:   CategoryScan,
		Message:    "Pages directory unreadable",
		Detail:     "A directory inside the pages tree could not be read. No output was written.",
		Suggestion: "Check filesystem permissions for the pages directory.",
	},
	"R011": {
		Category:   CategoryScan,
		Message:    "Pages directory not found",
		Detail:     "The configured pages directory does not exist.",
		Suggestion: "Create the directory or point pagesDir at an existing one. `routegen init` scaffolds a starter pages tree.",
	},

	// ============================================
	// Build Errors (R020-R029)
	// ============================================

	"R020": {
		Category:   CategoryBuild,
		Message:    "Duplicate component identifier",
		Detail:     "Two page files resolve to the same generated identifier even after ancestor-directory prefixing. Emitting both would produce invalid source.",
		Suggestion: "Rename one of the conflicting page files.",
	},

	// ============================================
	// Emit Errors (R030-R039)
	// ============================================

	"R030": {
		Category:   CategoryEmit,
		Message:    "Route serialization failed",
		Detail:     "The route tree could not be rendered into source text. The previous generated file was left untouched.",
		Suggestion: "This is a routegen bug; please report it with the pages tree that triggered it.",
	},
	"R031": {
		Category:   CategoryEmit,
		Message:    "Output write failed",
		Detail:     "The generated source could not be written to disk.",
		Suggestion: "Check that the output directory exists and is writable.",
	},

	// ============================================
	// CLI Errors (R040-R049)
	// ============================================

	"R040": {
		Category:   CategoryCLI,
		Message:    "File already exists",
		Detail:     "Scaffolding refuses to overwrite existing files.",
		Suggestion: "Move or delete the conflicting file, or scaffold into an empty directory.",
	},
}
