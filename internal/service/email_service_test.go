package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekids/internal/models"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, in)
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func enabledEmail(client sesAPI) *EmailService {
	return &EmailService{
		client:     client,
		fromEmail:  "hello@versekids.test",
		fromName:   "VerseKids",
		appBaseURL: "https://versekids.test",
		enabled:    true,
		logger:     discardLogger(),
	}
}

type accountMap map[string]*models.Account

func (m accountMap) GetByID(_ context.Context, id string) (*models.Account, error) {
	a, ok := m[id]
	if !ok {
		return nil, errors.New("no account")
	}
	return a, nil
}

func TestDisabledEmailServiceSkips(t *testing.T) {
	svc, err := NewEmailService(context.Background(), "us-east-1", "", "", "", discardLogger())
	require.NoError(t, err)
	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.SendYearCompleteEmail(context.Background(), "p@example.com", "Pat", "Ada", 1))
}

func TestParentNotifier(t *testing.T) {
	ses := &fakeSES{}
	accounts := accountMap{"account-1": {ID: "account-1", Email: "pat@example.com", Name: "Pat"}}
	n := NewParentNotifier(enabledEmail(ses), accounts)
	learner := &models.Learner{AccountID: "account-1", Name: "Ada <3"}
	ctx := context.Background()

	require.NoError(t, n.NotifyYearComplete(ctx, learner, 1))
	require.NoError(t, n.NotifyBooksMastered(ctx, learner, []string{"Genesis", "Exodus"}))
	require.Len(t, ses.inputs, 2)

	first := ses.inputs[0]
	assert.Equal(t, "VerseKids <hello@versekids.test>", aws.ToString(first.FromEmailAddress))
	assert.Equal(t, []string{"pat@example.com"}, first.Destination.ToAddresses)
	assert.Contains(t, aws.ToString(first.Content.Simple.Subject.Data), "year 1")
	assert.Contains(t, aws.ToString(first.Content.Simple.Body.Html.Data), "Ada &lt;3")

	second := ses.inputs[1]
	assert.Contains(t, aws.ToString(second.Content.Simple.Body.Text.Data), "- Exodus")

	assert.Error(t, n.NotifyYearComplete(ctx, &models.Learner{AccountID: "missing"}, 1))
}

func TestSendEmailError(t *testing.T) {
	svc := enabledEmail(&fakeSES{err: errors.New("throttled")})
	err := svc.SendMasteryEmail(context.Background(), "pat@example.com", "Pat", "Ada", []string{"Genesis"})
	assert.ErrorContains(t, err, "throttled")
}
