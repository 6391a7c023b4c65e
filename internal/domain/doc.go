// Package domain contains the core model for consumo: the parameters of the
// consumption function C = c0 + c1·(Y − T), the generated series and the
// workspace configuration.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// terminals, or the filesystem. Infra/adapters map into/from these types.
package domain
