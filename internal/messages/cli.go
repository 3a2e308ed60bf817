package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "tp"
	// RootShort is the short description for the root command.
	RootShort           = "Toolpin CLI"
	RootLong            = "Toolpin keeps development tools installed at the versions pinned in the project manifest."
	RootMissingManifest = "no toolpin project found (missing .tool-versions or .toolpin in this directory or any parent)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// SyncUse is the sync command usage.
	SyncUse   = "sync [tool...]"
	SyncShort = "Reinstall pinned tools so the local environment matches the manifest"

	SyncFlagManifest = "Path to the version manifest (overrides the configured path)"
	SyncFlagYes      = "Skip the confirmation prompt"

	SyncConfirmOnePromptFmt = "Reinstall %s at the manifest-pinned version?"
	SyncConfirmAllPrompt    = "Reinstall every tool pinned in the manifest?"
	SyncAborted             = "sync aborted"
	SyncNothingPinnedFmt    = "manifest %s pins no tools"

	SyncReinstalledFmt = "Reinstalled %s %s\n"
	SyncInstalledFmt   = "Installed %s %s (was not installed)\n"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the manifest, the version manager, and pinned-tool convergence"

	DoctorHealthCheckFmt = "Checking toolchain health in %s...\n"
	DoctorFailed         = "doctor found problems"

	// LicensesUse is the licenses command name.
	LicensesUse   = "licenses"
	LicensesShort = "Run the license-compliance check script"

	LicensesScriptMissingFmt = "license check script %s not found; set [licenses].script in .toolpin/config.toml"
	LicensesScriptFailedFmt  = "license check failed: %w"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt = "%s [y/N]: "
)
