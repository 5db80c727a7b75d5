package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/lintang-b-s/campus-route/pkg/datastructure"
	graph_di "github.com/lintang-b-s/campus-route/pkg/di/graph"
	"github.com/lintang-b-s/campus-route/pkg/kvdb"

	bolt "go.etcd.io/bbolt"
)

var (
	mapFile  = flag.String("f", "campus.osm", "openstreetmap file (.osm or .osm.pbf) for the walking network")
	poiFile  = flag.String("poi", "", "optional yaml file with campus locations, replaces locations found in the map")
	dbFile   = flag.String("db", "campus_route.db", "bbolt snapshot database")
	name     = flag.String("name", "campus", "snapshot name")
	list     = flag.Bool("list", false, "list stored snapshots and exit")
	progress = flag.Bool("progress", true, "show a progress bar while parsing")
)

func main() {
	flag.Parse()

	db, err := bolt.Open(*dbFile, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	store, err := kvdb.NewKVDB(db)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if *list {
		infos, err := store.Snapshots()
		if err != nil {
			log.Fatal(err)
		}
		for _, info := range infos {
			fmt.Printf("%s\t%d bytes\n", info.Name, info.SizeBytes)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src, err := graph_di.Build(ctx, *mapFile, *poiFile, *progress)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()

	// load once so a broken source never reaches the store
	g, err := datastructure.Load(src)
	if err != nil {
		log.Fatal(err)
	}

	if err := store.SaveSource(*name, src); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("snapshot %q saved: %s\n", *name, g)
}
