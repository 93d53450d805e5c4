package services

import (
	"github.com/destegai/scan-server/classifier"
	"github.com/destegai/scan-server/repositories"
	"github.com/destegai/scan-server/storage"
)

// Services holds all service instances
type Services struct {
	Scan     ScanService
	Activity ActivityService
	Account  AccountService
	Admin    AdminService
	Report   ReportService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, client classifier.Client, blobs storage.BlobStore, scanConfig ScanConfig) *Services {
	activity := NewActivityService(repos.Activity)

	return &Services{
		Scan:     NewScanService(client, repos.Scans, activity, scanConfig),
		Activity: activity,
		Account:  NewAccountService(repos.Users, activity, blobs),
		Admin:    NewAdminService(repos.Users, repos.Scans, activity),
		Report:   NewReportService(),
	}
}
