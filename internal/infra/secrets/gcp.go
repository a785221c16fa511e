// Package secrets loads credentials from GCP Secret Manager into the configuration.
package secrets

import (
	"context"
	"strings"

	"storefront/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/pkg/errors"
)

// ProviderGCP selects GCP Secret Manager.
const ProviderGCP = "gcp"

// accessFunc returns the payload of a fully qualified secret version.
type accessFunc func(ctx context.Context, name string) ([]byte, error)

// Resolve replaces credential fields with values from the configured secret
// manager. It is a no-op when no provider is configured.
func Resolve(ctx context.Context, cfg *config.Config) error {
	if cfg.Secrets == nil || cfg.Secrets.Provider == "" {
		return nil
	}
	if cfg.Secrets.Provider != ProviderGCP {
		return errors.Errorf("unsupported secrets provider: %s", cfg.Secrets.Provider)
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return errors.Wrap(err, "creating secret manager client")
	}
	defer client.Close()

	return resolve(ctx, cfg, func(ctx context.Context, name string) ([]byte, error) {
		result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil {
			return nil, err
		}
		if result.GetPayload() == nil {
			return nil, errors.New("empty payload")
		}

		return result.GetPayload().GetData(), nil
	})
}

func resolve(ctx context.Context, cfg *config.Config, access accessFunc) error {
	targets := []struct {
		secret string
		field  *string
	}{
		{cfg.Secrets.StorefrontTokenSecret, &cfg.Commerce.StorefrontToken},
		{cfg.Secrets.SupabaseAnonKeySecret, &cfg.Supabase.AnonKey},
	}

	for _, target := range targets {
		if target.secret == "" {
			continue
		}

		name, err := versionName(cfg.Secrets.ProjectID, target.secret)
		if err != nil {
			return err
		}

		value, err := access(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "accessing secret %s", name)
		}

		*target.field = strings.TrimSpace(string(value))
	}

	return nil
}

// versionName expands a short secret id into projects/{p}/secrets/{id}/versions/latest.
func versionName(projectID, secret string) (string, error) {
	if strings.HasPrefix(secret, "projects/") {
		if !strings.Contains(secret, "/versions/") {
			return secret + "/versions/latest", nil
		}

		return secret, nil
	}
	if projectID == "" {
		return "", errors.Errorf("secrets.projectId is required to resolve %q", secret)
	}

	return "projects/" + projectID + "/secrets/" + secret + "/versions/latest", nil
}
