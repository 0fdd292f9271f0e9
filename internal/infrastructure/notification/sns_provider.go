package notification

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	log "github.com/sirupsen/logrus"
)

var ErrSNSClientNotConfigured = errors.New("sns client not configured")

// SNSProvider sends SMS through AWS SNS. When SNS is disabled (or the client
// is absent) it operates in simulated mode: the send is logged locally and a
// synthetic message id is returned, so the rest of the pipeline behaves
// identically in dev and prod.
//
// Env vars:
//   - SNS_ENABLED (default: false; "1", "true", "yes", "on" enable live sends)
//   - SNS_TOPIC_ARN (optional; enables staff topic publishes)
type SNSProvider struct {
	client   *sns.Client
	topicARN string
	enabled  bool
}

func NewSNSProvider(client *sns.Client) *SNSProvider {
	enabled := isSNSEnabled()
	if enabled && client == nil {
		log.Warn("[notify][sns] SNS_ENABLED set but no client, falling back to simulated mode")
		enabled = false
	}
	if !enabled {
		log.Info("[notify][sns] simulated mode enabled")
	}
	return &SNSProvider{
		client:   client,
		topicARN: os.Getenv("SNS_TOPIC_ARN"),
		enabled:  enabled,
	}
}

// SendSMS publishes an SMS to a single phone number (E.164). In simulated
// mode it logs the message and returns a synthetic id.
func (p *SNSProvider) SendSMS(ctx context.Context, phoneNumber, message string) (string, error) {
	if !p.enabled {
		log.Infof("[notify][sns] simulated SMS to %s - %s", phoneNumber, message)
		return simulatedID("SMS"), nil
	}
	if p.client == nil {
		return "", ErrSNSClientNotConfigured
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

// PublishToTopic publishes to the configured staff topic. Disabled or
// unconfigured topics degrade to a simulated publish.
func (p *SNSProvider) PublishToTopic(ctx context.Context, subject, message string) (string, error) {
	if !p.enabled || p.topicARN == "" {
		log.Infof("[notify][sns] simulated topic publish subject=%q - %s", subject, message)
		return simulatedID("TOPIC"), nil
	}
	if p.client == nil {
		return "", ErrSNSClientNotConfigured
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func simulatedID(kind string) string {
	return kind + "_SIMULATED_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}

func isSNSEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SNS_ENABLED")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
