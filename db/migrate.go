package main

import (
	"flag"
	"log"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Applies the index migrations. Documents are never created here; the
// collections are expected to be populated externally.
var (
	url  = flag.String("url", os.Getenv("MONGO_URL"), "mongodb url including the database, e.g. mongodb://localhost:27017/media_catalog")
	path = flag.String("path", "file://db/migrations", "migrations source")
	down = flag.Bool("down", false, "roll back every migration")
)

func main() {
	flag.Parse()
	if *url == "" {
		log.Fatal("a mongodb url must be provided with -url or MONGO_URL")
	}
	m, err := migrate.New(*path, *url)
	if err != nil {
		log.Fatal(err)
	}
	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
}
