package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/buildbarn/bb-local-tmp-storage/pkg/tmpstorage"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// This tool exposes the temporary storage allocator to supervisors
// that are not written in Go, such as shell scripts that launch
// workers. A typical setup runs "cleanup-unclean-shutdown" before
// starting any workers, "allocate" before a task is started, and
// "cleanup" once the worker running the task has terminated.
//
// The "allocate" command prints the path of the directory that was
// allocated. If there is insufficient space, it exits with status 2,
// so that callers can distinguish it from other failures.

const exitCodeRejected = 2

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] command [arguments]\n\n", os.Args[0])
	fmt.Fprint(os.Stderr, "Commands:\n")
	fmt.Fprint(os.Stderr, "  allocate identifier size     Allocate temporary storage\n")
	fmt.Fprint(os.Stderr, "  cleanup identifier           Remove temporary storage\n")
	fmt.Fprint(os.Stderr, "  cleanup-unclean-shutdown     Remove all temporary storage\n\n")
	fmt.Fprint(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
}

func parseSize(s string) (int64, error) {
	size, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if size > math.MaxInt64 {
		return 0, fmt.Errorf("size %s is too large", s)
	}
	return int64(size), nil
}

func main() {
	dataDirectoryPaths := pflag.StringArray("data-directory", nil, "Data directory underneath which temporary storage is placed. May be provided multiple times.")
	minimumFreeSpace := pflag.String("minimum-free-space", humanize.IBytes(tmpstorage.DefaultMinimumFreeSpaceBytes), "Amount of space that must remain free after allocating temporary storage.")
	pflag.Usage = usage
	pflag.SetInterspersed(false)
	pflag.Parse()
	args := pflag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	minimumFreeSpaceBytes, err := parseSize(*minimumFreeSpace)
	if err != nil {
		log.Fatalf("Invalid minimum free space %#v: %s", *minimumFreeSpace, err)
	}
	provider, err := tmpstorage.NewProviderFromConfiguration(tmpstorage.Configuration{
		DataDirectoryPaths:    *dataDirectoryPaths,
		MinimumFreeSpaceBytes: &minimumFreeSpaceBytes,
	}, nil)
	if err != nil {
		log.Fatal("Failed to create temporary storage provider: ", err)
	}

	ctx := context.Background()
	switch command := args[0]; command {
	case "allocate":
		if len(args) != 3 {
			log.Fatal("Usage: allocate identifier size")
		}
		requestedSizeBytes, err := parseSize(args[2])
		if err != nil {
			log.Fatalf("Invalid size %#v: %s", args[2], err)
		}
		path, admitted, err := provider.TryGetLocalTmpStorage(ctx, args[1], requestedSizeBytes)
		if err != nil {
			log.Fatal("Failed to allocate temporary storage: ", err)
		}
		if !admitted {
			log.Printf("Insufficient space to allocate %s of temporary storage for %#v", humanize.IBytes(uint64(requestedSizeBytes)), args[1])
			os.Exit(exitCodeRejected)
		}
		fmt.Println(path)
	case "cleanup":
		if len(args) != 2 {
			log.Fatal("Usage: cleanup identifier")
		}
		if err := provider.CleanupLocalTmpStorage(ctx, args[1]); err != nil {
			log.Fatal("Failed to clean up temporary storage: ", err)
		}
	case "cleanup-unclean-shutdown":
		if len(args) != 1 {
			log.Fatal("Usage: cleanup-unclean-shutdown")
		}
		if err := provider.CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx); err != nil {
			log.Fatal("Failed to clean up temporary storage: ", err)
		}
	default:
		log.Fatalf("Unknown command %#v", command)
	}
}
