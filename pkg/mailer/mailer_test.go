package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtpl "github.com/oksasatya/go-ddd-user-management/pkg/mailer/templates"
)

func TestCompose_Plain(t *testing.T) {
	msg, err := Compose(EmailJob{To: " a@x.com ", Subject: "Hi", Text: "body"})

	require.NoError(t, err)
	assert.Equal(t, Message{To: "a@x.com", Subject: "Hi", Text: "body"}, msg)
}

func TestCompose_NoRecipient(t *testing.T) {
	_, err := Compose(EmailJob{Subject: "Hi"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestCompose_Template(t *testing.T) {
	brand := mailtpl.Brand{AppName: "Users", CompanyName: "Acme"}
	msg, err := Compose(EmailJob{
		To:       "ana@x.com",
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(brand, "Ana", "ana@x.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Welcome to Users, Ana", msg.Subject)
	assert.Contains(t, msg.Text, "ana@x.com")
	assert.Contains(t, msg.HTML, "<strong>ana@x.com</strong>")
}

func TestCompose_TemplateFillsEmail(t *testing.T) {
	msg, err := Compose(EmailJob{To: "ana@x.com", Template: mailtpl.AccountDeleted})

	require.NoError(t, err)
	assert.Contains(t, msg.Text, "The account for ana@x.com was deleted")
}

func TestCompose_UnknownTemplate(t *testing.T) {
	_, err := Compose(EmailJob{To: "ana@x.com", Template: "login_otp"})
	assert.Error(t, err)
}
