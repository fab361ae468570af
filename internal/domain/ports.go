package domain

// ProjectScanner walks a project directory and returns file metadata.
type ProjectScanner interface {
	Scan(projectPath string) (*ScanResult, error)
}

// PlatformDetector classifies a scanned project into one DetectionResult.
// It fails with ErrNotDetected or *ConflictError, never with a partial result.
type PlatformDetector interface {
	Detect(scan *ScanResult) (*DetectionResult, error)
}

// BackupWriter copies files aside before they are rewritten.
type BackupWriter interface {
	Backup(projectPath, relPath string) error
}

// GitInfo exposes repository metadata attached to migration reports.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}

// ReportWriter persists a finished migration report.
type ReportWriter interface {
	WriteJSON(path string, report *MigrationReport) error
	WriteMarkdown(path string, report *MigrationReport) error
}
