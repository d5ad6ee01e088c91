package main

import (
	"github.com/krapaoshare/krapao-go/internal/api"
	"github.com/krapaoshare/krapao-go/internal/config"
	"github.com/krapaoshare/krapao-go/internal/store"
)

// newAPIClient builds the HTTP client from configuration.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.BaseURL, cfg.Token), nil
}

// currentSession resolves the configured user identity. Stores treat an
// empty id as the no-active-user precondition failure.
func currentSession() store.Session {
	cfg, err := config.LoadAPIConfig()
	if err != nil {
		return store.StaticSession("")
	}
	return store.StaticSession(cfg.UserID)
}

// newAccountStore wires an account store from config.
func newAccountStore() (*store.AccountStore, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return store.NewAccountStore(client, currentSession()), nil
}

// newTransactionStore wires a transaction store from config.
func newTransactionStore() (*store.TransactionStore, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return store.NewTransactionStore(client, currentSession()), nil
}

// newTypeStore wires a type store from config.
func newTypeStore() (*store.TypeStore, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	return store.NewTypeStore(client, currentSession()), nil
}
