// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
// Deploy edilen binary'nin yanında migration dosyası taşıma gereği kalmaz.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrationsRoot embed.FS

// EmbeddedMigrations, gömülü migration dosyalarını kök dizininde sunan fs.FS.
// New'a doğrudan geçilir; "migrations/" önekiyle uğraşmaya gerek yoktur.
var EmbeddedMigrations = func() fs.FS {
	sub, err := fs.Sub(migrationsRoot, "migrations")
	if err != nil {
		// embed derleme zamanında garanti — buraya düşülmez.
		panic(err)
	}
	return sub
}()
