package service

type appInfoService struct {
	version string
}

// NewAppInfoService constructs an AppInfoService reporting version.
func NewAppInfoService(version string) AppInfoService {
	if version == "" {
		version = "N/A"
	}
	return &appInfoService{version: version}
}

func (s *appInfoService) Version() string {
	return s.version
}
