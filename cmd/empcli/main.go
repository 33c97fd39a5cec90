package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ananthvk/empdb"
	"github.com/spf13/afero"
)

// parseAddString splits an add argument of the form "name,address,hours"
func parseAddString(s string) (name string, address string, hours uint32, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return "", "", 0, fmt.Errorf("expected name,address,hours, got %q", s)
	}
	h, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid hours %q: %w", parts[2], err)
	}
	return parts[0], parts[1], uint32(h), nil
}

func main() {
	dbpath := flag.String("f", "", "path to the database file (required)")
	create := flag.Bool("n", false, "create a new database file")
	addstr := flag.String("a", "", "add a record, formatted as name,address,hours")
	delname := flag.String("d", "", "delete the first record with the given name")
	list := flag.Bool("l", false, "list all records")
	info := flag.Bool("i", false, "print the database header")
	flag.Parse()

	if *dbpath == "" {
		fmt.Fprintln(os.Stderr, "Usage: empcli -f <file> [-n] [-a name,address,hours] [-d name] [-l] [-i]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	fs := afero.NewOsFs()

	var store *empdb.Store
	var err error
	if *create {
		store, err = empdb.Create(fs, *dbpath)
	} else {
		store, err = empdb.Open(fs, *dbpath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "(error) OPEN: %s\n", err)
		os.Exit(1)
	}
	defer store.Close()

	mutated := false

	if *addstr != "" {
		name, address, hours, err := parseAddString(*addstr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "(error) ADD: %s\n", err)
			os.Exit(1)
		}
		if err := store.Append(name, address, hours); err != nil {
			fmt.Fprintf(os.Stderr, "(error) ADD: %s\n", err)
			os.Exit(1)
		}
		mutated = true
	}

	if *delname != "" {
		if err := store.Delete(*delname); err != nil {
			fmt.Fprintf(os.Stderr, "(error) DELETE: %s\n", err)
			os.Exit(1)
		}
		mutated = true
	}

	if mutated {
		if _, err := store.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "(error) SAVE: %s\n", err)
			os.Exit(1)
		}
	}

	if *list {
		for i, emp := range store.List() {
			fmt.Printf("Employee %d\n\tName: %s\n\tAddress: %s\n\tHours: %d\n", i, emp.Name, emp.Address, emp.Hours)
		}
	}

	if *info {
		hdr, err := store.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "(error) INFO: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Database Version: %d\n", hdr.Version)
		fmt.Printf("Number of Employees: %d\n", hdr.Count)
		fmt.Printf("File Size: %d bytes\n", hdr.FileSize)
		fmt.Printf("Actual File Size: %d bytes\n", hdr.ActualSize)
	}
}
