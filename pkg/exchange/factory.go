package exchange

import (
	"fmt"
	"os"
	"strings"

	"github.com/uniex/uniex/pkg/types"
)

const (
	ExchangeOptionsKeyAPIKey        = "API_KEY"
	ExchangeOptionsKeyAPISecret     = "API_SECRET"
	ExchangeOptionsKeyAPIPassphrase = "API_PASSPHRASE"
)

// ExchangeOptions is a map of exchange options used to initialize an exchange
type ExchangeOptions map[string]string

// ExchangeEnvLoader loads exchange options from environment variables.
type ExchangeEnvLoader func(varPrefix string) (ExchangeOptions, error)

// ExchangeConstructor creates an exchange instance with the given options.
type ExchangeConstructor func(ExchangeOptions) (types.Exchange, error)

type ExchangeFactory struct {
	EnvLoader   ExchangeEnvLoader
	Constructor ExchangeConstructor
}

var exchangeFactories = map[types.ExchangeName]ExchangeFactory{}

// RegisterExchange is called from the adapter packages' init functions.
func RegisterExchange(name types.ExchangeName, factory ExchangeFactory) {
	exchangeFactories[name] = factory
}

func New(n types.ExchangeName, options ExchangeOptions) (types.Exchange, error) {
	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.Constructor == nil {
		return nil, fmt.Errorf("exchange factory %v does not support constructor", n)
	}

	return factory.Constructor(options)
}

// NewPublic builds an adapter without credentials, enough for the public
// market-data surface. Private calls will fail with the authentication
// kind.
func NewPublic(exchangeName types.ExchangeName) (types.Exchange, error) {
	return New(exchangeName, ExchangeOptions{})
}

// NewWithEnvVarPrefix allocates and initializes the exchange instance with
// the given environment variable prefix. An empty prefix defaults to the
// exchange name.
func NewWithEnvVarPrefix(n types.ExchangeName, varPrefix string) (types.Exchange, error) {
	if len(varPrefix) == 0 {
		varPrefix = n.String()
	}

	varPrefix = strings.ToUpper(varPrefix)

	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	loader := factory.EnvLoader
	if loader == nil {
		loader = DefaultEnvVarLoader
	}

	options, err := loader(varPrefix)
	if err != nil {
		return nil, err
	}

	return New(n, options)
}

func DefaultEnvVarLoader(varPrefix string) (ExchangeOptions, error) {
	key := os.Getenv(varPrefix + "_API_KEY")
	secret := os.Getenv(varPrefix + "_API_SECRET")
	if len(key) == 0 || len(secret) == 0 {
		return nil, fmt.Errorf("can not initialize exchange due to empty key or secret, env var prefix: %s", varPrefix)
	}

	passphrase := os.Getenv(varPrefix + "_API_PASSPHRASE")

	return ExchangeOptions{
		ExchangeOptionsKeyAPIKey:        key,
		ExchangeOptionsKeyAPISecret:     secret,
		ExchangeOptionsKeyAPIPassphrase: passphrase,
	}, nil
}
