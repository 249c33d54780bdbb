package ipinfo

import (
	"context"

	"events-server/models"
)

// IPInfoAPI geolocates IP addresses through ipinfo.io.
type IPInfoAPI interface {
	Lookup(ctx context.Context, ip string) (*models.IPInfo, error)
}
