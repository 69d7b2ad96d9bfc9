package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"media-catalog/internal"
	cl "media-catalog/pkg/catelog"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

const menu = `
1. List albums
2. Find Photo by ID
3. Update Photo
4. Add Tag
5. Exit`

// CLI is the interactive text front end. Run blocks until the operator
// chooses exit, input ends, or the catalog returns an error.
type CLI struct {
	Catalog internal.Catalog
	In      io.Reader
	Out     io.Writer

	scanner *bufio.Scanner
}

// errEOF marks the end of operator input.
var errEOF = errors.New("end of input")

func (c *CLI) Run(ctx context.Context) error {
	c.scanner = bufio.NewScanner(c.In)
	c.println("Digital Media Catalog CLI")

	for {
		c.println(menu)
		choice, err := c.prompt("Select: ")
		if err != nil {
			return c.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.listAlbums(ctx)
		case "2":
			err = c.findPhoto(ctx)
		case "3":
			err = c.updatePhoto(ctx)
		case "4":
			err = c.addTag(ctx)
		case "5":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid choice")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *CLI) finish(err error) error {
	if err == errEOF {
		c.println("")
		return nil
	}
	return err
}

func (c *CLI) listAlbums(ctx context.Context) error {
	albums, err := c.Catalog.ListAlbums(ctx)
	if err != nil {
		return errors.Wrap(err, "list albums")
	}
	for _, a := range albums {
		c.printf("- %d: %s\n", a.ID, a.Name)
	}
	return nil
}

func (c *CLI) findPhoto(ctx context.Context) error {
	id, ok, err := c.promptID()
	if err != nil || !ok {
		return err
	}

	photo, err := c.Catalog.GetPhotoByID(ctx, id)
	if errors.Is(err, cl.ErrNotFound) {
		c.println("Not found")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "find photo")
	}
	c.printPhoto(photo)
	return nil
}

func (c *CLI) updatePhoto(ctx context.Context) error {
	id, ok, err := c.promptID()
	if err != nil || !ok {
		return err
	}
	title, err := c.prompt("New title (blank = keep): ")
	if err != nil {
		return err
	}
	desc, err := c.prompt("New description (blank = keep): ")
	if err != nil {
		return err
	}

	// Blank input keeps the stored value, so it maps to an absent field.
	res, err := c.Catalog.UpdatePhoto(ctx, id, null.NewString(title, title != ""), null.NewString(desc, desc != ""))
	if err != nil {
		return errors.Wrap(err, "update photo")
	}
	if res.OK() {
		c.println("Updated")
	} else {
		c.println("Not updated")
	}
	return nil
}

func (c *CLI) addTag(ctx context.Context) error {
	id, ok, err := c.promptID()
	if err != nil || !ok {
		return err
	}
	tag, err := c.prompt("Tag: ")
	if err != nil {
		return err
	}

	res, err := c.Catalog.AddTag(ctx, id, tag)
	if err != nil {
		return errors.Wrap(err, "add tag")
	}
	if res.OK() {
		c.println("Tag added")
	} else {
		c.println("Duplicate or invalid")
	}
	return nil
}

// promptID reads a photo id. ok is false when the input was not a number and
// the rejection has already been printed.
func (c *CLI) promptID() (id int, ok bool, err error) {
	s, err := c.prompt("Photo ID: ")
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil {
		c.println("Invalid photo ID")
		return 0, false, nil
	}
	return id, true, nil
}

func (c *CLI) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", errEOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

func (c *CLI) printPhoto(p cl.Photo) {
	albums := make([]string, 0, len(p.Albums))
	for _, a := range p.Albums {
		albums = append(albums, strconv.Itoa(a))
	}
	c.printf("ID:          %d\n", p.ID)
	c.printf("Title:       %s\n", p.Title)
	c.printf("Description: %s\n", p.Description)
	c.printf("Tags:        %s\n", strings.Join(p.Tags, ", "))
	c.printf("Albums:      %s\n", strings.Join(albums, ", "))
}

func (c *CLI) println(s string) {
	_, _ = fmt.Fprintln(c.Out, s)
}

func (c *CLI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.Out, format, args...)
}
