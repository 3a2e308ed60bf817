package messages

// System messages for internal operations.
const (
	// ManifestReadFailedFmt wraps manifest read errors.
	ManifestReadFailedFmt = "read manifest %s: %w"
	// ManifestEntryNotFoundFmt reports a tool absent from the manifest.
	ManifestEntryNotFoundFmt = "tool %q is not pinned in %s"
	// ManifestMalformedVersionFmt reports a matched line with no usable version token.
	ManifestMalformedVersionFmt = "manifest %s pins %q without a usable version (line: %q)"
	ManifestToolRequired        = "tool name is required"

	// ManagerNotInstalled marks an uninstall that found nothing to remove.
	ManagerNotInstalled = "tool is not installed"
	// ManagerBinaryRequired indicates the version manager binary is unset.
	ManagerBinaryRequired = "version manager binary is required"
	// ManagerSubsystemFailureFmt carries the subsystem's diagnostic text verbatim.
	ManagerSubsystemFailureFmt = "%s %s: version manager failed: %v"
	ManagerCurrentNoVersionFmt = "version manager reported no version for %s (output: %q)"

	// ConfigReadFailedFmt wraps config file read errors.
	ConfigReadFailedFmt = "read config %s: %w"
	// ConfigParseFailedFmt wraps TOML parse errors.
	ConfigParseFailedFmt  = "parse config %s: %w"
	ConfigExpandPathFmt   = "expand path %s: %w"
	ConfigManifestMissing = "manifest path must not be empty"

	// RootStartPathRequired indicates start path is required for root resolution.
	RootStartPathRequired = "start path is required"
	RootResolvePathFmt    = "resolve path %s: %w"
	RootCheckPathFmt      = "check %s: %w"
)
