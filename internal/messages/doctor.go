package messages

// Doctor messages for the doctor command.
const (
	DoctorCheckNameManifest    = "Manifest"
	DoctorCheckNameManager     = "Manager"
	DoctorCheckNameConvergence = "Convergence"

	DoctorManifestMissingFmt       = "Manifest not found: %s"
	DoctorManifestMissingRecommend = "Create a .tool-versions file pinning your tools, or set [manifest].path in .toolpin/config.toml."
	DoctorManifestUnreadableFmt    = "Failed to read manifest %s: %v"
	DoctorManifestInvalidFmt       = "Manifest %s is malformed: %v"
	DoctorManifestInvalidRecommend = "Each manifest line must be `<tool> <version>`; fix the reported line."
	DoctorManifestLoadedFmt        = "Manifest loaded: %s (%d tools pinned)"
	DoctorManifestEmptyFmt         = "Manifest %s pins no tools"

	DoctorManagerFoundFmt          = "Version manager found: %s"
	DoctorManagerNotFoundFmt       = "Version manager %q not found on PATH"
	DoctorManagerNotFoundRecommend = "Install the version manager or set [manager].binary in .toolpin/config.toml."

	DoctorToolConvergedFmt         = "%s is at pinned version %s"
	DoctorToolNotInstalledFmt      = "%s is not installed (pinned %s)"
	DoctorToolNotInstalledRecFmt   = "Run `tp sync %s` to install it."
	DoctorToolDriftFmt             = "%s is at %s, pinned %s"
	DoctorToolDriftRecFmt          = "Run `tp sync %s` to reinstall the pinned version."
	DoctorToolQueryFailedFmt       = "Could not determine the installed version of %s: %v"
	DoctorToolQueryFailedRecommend = "Check that the version manager works in this shell."
)
