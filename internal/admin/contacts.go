package admin

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// Contacts prints the inbox, newest first.
func (a *Admin) Contacts(ctx context.Context, unreadOnly bool) error {
	list, err := a.contactService.ListContacts(ctx, unreadOnly)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECEIVED\tFROM\tSUBJECT\tREAD")
	for _, c := range list {
		read := ""
		if c.IsRead {
			read = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s <%s>\t%s\t%s\n",
			c.ID, c.CreatedAt.Format("2006-01-02 15:04"), c.Name, c.Email, cell(c.Subject), read)
	}

	return w.Flush()
}

// ReadContact prints one message in full and marks it read.
func (a *Admin) ReadContact(ctx context.Context, id int64) error {
	c, err := a.contactService.ReadContact(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "From:     %s <%s>\n", c.Name, c.Email)
	fmt.Fprintf(a.out, "Subject:  %s\n", c.Subject)
	fmt.Fprintf(a.out, "Received: %s\n\n", c.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(a.out, c.Message)

	return nil
}
