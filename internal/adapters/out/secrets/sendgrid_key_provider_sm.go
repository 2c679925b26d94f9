// backend/internal/adapters/out/secrets/sendgrid_key_provider_sm.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// SendGridKeyProviderSM fetches the SendGrid API key from Secret Manager so
// the key never sits in plain env on production revisions.
type SendGridKeyProviderSM struct {
	SM         *secretmanager.Client
	ProjectID  string
	SecretName string
	Version    string
}

func NewSendGridKeyProviderSM(sm *secretmanager.Client, projectID, secretName string) *SendGridKeyProviderSM {
	return &SendGridKeyProviderSM{
		SM:         sm,
		ProjectID:  strings.TrimSpace(projectID),
		SecretName: strings.TrimSpace(secretName),
		Version:    "latest",
	}
}

// Get resolves the key.
func (p *SendGridKeyProviderSM) Get(ctx context.Context) (string, error) {
	if p == nil || p.SM == nil {
		return "", errors.New("sendgrid_key_provider_sm: secret manager client is nil")
	}
	prj := strings.TrimSpace(p.ProjectID)
	if prj == "" {
		return "", errors.New("sendgrid_key_provider_sm: projectID is empty")
	}
	secretID := strings.TrimSpace(p.SecretName)
	if secretID == "" {
		return "", errors.New("sendgrid_key_provider_sm: secret name is empty")
	}
	ver := strings.TrimSpace(p.Version)
	if ver == "" {
		ver = "latest"
	}

	name := "projects/" + prj + "/secrets/" + secretID + "/versions/" + ver
	resp, err := p.SM.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("sendgrid_key_provider_sm: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("sendgrid_key_provider_sm: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
