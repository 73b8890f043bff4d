// services/moderation_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"petcare-catalog/models"
	"petcare-catalog/repository"
)

const defaultRejectedRetentionDays = 90

// ModerationService handles the housekeeping around the type-suggestion
// workflow: it alerts the moderation phone when a suggestion arrives and
// periodically purges old REJECTED suggestions.
type ModerationService struct {
	types         repository.TypeRepository
	client        *twilio.RestClient
	alertPhone    string
	fromPhone     string
	retentionDays int
}

func NewModerationService(types repository.TypeRepository) *ModerationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	retentionDays := defaultRejectedRetentionDays
	if env := os.Getenv("REJECTED_RETENTION_DAYS"); env != "" {
		if days, err := strconv.Atoi(env); err == nil && days > 0 {
			retentionDays = days
		}
	}

	return &ModerationService{
		types: types,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		alertPhone:    os.Getenv("MODERATION_ALERT_PHONE"),
		fromPhone:     os.Getenv("TWILIO_FROM_PHONE"),
		retentionDays: retentionDays,
	}
}

func (s *ModerationService) StartScheduler() {
	c := cron.New()

	// Purge stale rejected suggestions daily at 3 AM
	c.AddFunc("0 3 * * *", s.PurgeRejected)

	c.Start()
	log.Println("Moderation scheduler started")
}

// PurgeRejected deletes REJECTED suggestions that have sat untouched past
// the retention window. Rejections are terminal, so keeping them around
// only blocks their slugs forever.
func (s *ModerationService) PurgeRejected() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	purged, err := s.types.DeleteRejectedBefore(cutoff)
	if err != nil {
		log.Printf("Failed to purge rejected service types: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d rejected service types older than %d days", purged, s.retentionDays)
	}
}

// NotifyTypeSuggested sends an SMS to the moderation phone so pending
// suggestions don't go unnoticed. A missing phone config disables alerts.
func (s *ModerationService) NotifyTypeSuggested(serviceType *models.ServiceType) {
	if s.alertPhone == "" || s.fromPhone == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.alertPhone)
	params.SetFrom(s.fromPhone)
	params.SetBody(fmt.Sprintf("New service type suggested: %q (%s). Pending review.",
		serviceType.Name, serviceType.ID))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send moderation alert for type %s: %v", serviceType.ID, err)
		return
	}
	log.Printf("Moderation alert sent for suggested type %s", serviceType.ID)
}
