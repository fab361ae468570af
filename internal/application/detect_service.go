package application

import (
	"fmt"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// DetectService orchestrates the detection pipeline: scan -> detect.
type DetectService struct {
	scanner  domain.ProjectScanner
	detector domain.PlatformDetector
}

func NewDetectService(scanner domain.ProjectScanner, detector domain.PlatformDetector) *DetectService {
	return &DetectService{scanner: scanner, detector: detector}
}

// Detect classifies the project at projectPath. Detection failures
// (domain.ErrNotDetected, *domain.ConflictError) pass through unwrapped so
// callers can branch on them.
func (s *DetectService) Detect(projectPath string) (*domain.DetectionResult, error) {
	scan, err := s.scanner.Scan(projectPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return s.detector.Detect(scan)
}
