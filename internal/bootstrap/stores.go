package bootstrap

import (
	"github.com/boolean-maybe/todo/config"
	"github.com/boolean-maybe/todo/store"
)

// InitStore creates the file-backed task store for the configured task file.
func InitStore(cfg *config.Config) *store.FileStore {
	path := config.GetStoreFile()
	return store.NewFileStore(path, store.WithSchemaCheck(cfg.Store.SchemaCheck))
}
