package sysconfig

import (
	"context"

	"github.com/fox-one/pkg/property"
)

const (
	// OracleProviderKey property key of the active price provider
	OracleProviderKey = "oracle_provider"
)

// ReadOracleProvider reads the active price provider handle.
// empty if never set.
func ReadOracleProvider(ctx context.Context, property property.Store) (string, error) {
	v, err := property.Get(ctx, OracleProviderKey)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// WriteOracleProvider stores the active price provider handle
func WriteOracleProvider(ctx context.Context, property property.Store, provider string) error {
	return property.Save(ctx, OracleProviderKey, provider)
}
