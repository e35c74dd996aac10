package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	addr := os.Getenv("CATALOG_ADDR")
	if addr == "" {
		addr = "http://localhost:8080"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, addr, os.Args[2:])
	case "get":
		err = runGet(ctx, addr, os.Args[2:])
	case "add":
		err = runAdd(ctx, addr, os.Args[2:])
	case "rm":
		err = runRm(ctx, addr, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: catalogctl <command> [flags]

commands:
  list   show the catalog (supports -term, -category, -sort, -addr)
  get    show one video by id
  add    upload a video record
  rm     delete a video by id

CATALOG_ADDR or -addr set the server base URL (default http://localhost:8080)`)
}

func runList(ctx context.Context, addr string, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.StringVar(&addr, "addr", addr, "catalog base URL")
	term := fs.String("term", "", "search term (title, description, instructor)")
	category := fs.String("category", view.CategoryAll, "category filter")
	sortKey := fs.String("sort", view.SortNewest, "sort key: newest|oldest|title|instructor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := view.NewClient(addr)
	videos, err := client.List(ctx)
	if err != nil {
		return err
	}

	result := view.Apply(videos, view.Query{
		Term:     *term,
		Category: *category,
		SortKey:  *sortKey,
	})

	fmt.Printf("categories: %s\n\n", strings.Join(view.Categories(videos), ", "))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tINSTRUCTOR\tCREATED")
	for _, v := range result {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Title, v.Category, v.Instructor, v.CreatedAt.Format(time.RFC3339))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d videos\n", len(result), len(videos))
	return nil
}

func runGet(ctx context.Context, addr string, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	fs.StringVar(&addr, "addr", addr, "catalog base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("get expects exactly one id")
	}

	video, err := view.NewClient(addr).Get(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("%s\n  %s\n  category: %s\n  instructor: %s (%s)\n  url: %s\n  created: %s\n",
		video.Title,
		video.Description,
		video.Category,
		video.Instructor,
		video.InstructorID,
		video.VideoURL,
		video.CreatedAt.Format(time.RFC3339),
	)
	return nil
}

func runAdd(ctx context.Context, addr string, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	fs.StringVar(&addr, "addr", addr, "catalog base URL")
	title := fs.String("title", "", "course title")
	desc := fs.String("desc", "", "course description")
	category := fs.String("category", "", "course category")
	videoURL := fs.String("url", "", "video URL")
	instructor := fs.String("instructor", "", "instructor display name")
	instructorID := fs.String("instructor-id", "", "instructor user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := view.NewClient(addr).Create(ctx, models.Video{
		Title:        *title,
		Description:  *desc,
		Category:     *category,
		VideoURL:     *videoURL,
		Instructor:   *instructor,
		InstructorID: *instructorID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %s (%s)\n", created.ID, created.Title)
	return nil
}

func runRm(ctx context.Context, addr string, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	fs.StringVar(&addr, "addr", addr, "catalog base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("rm expects exactly one id")
	}

	if err := view.NewClient(addr).Delete(ctx, fs.Arg(0)); err != nil {
		return err
	}

	fmt.Println("deleted", fs.Arg(0))
	return nil
}
