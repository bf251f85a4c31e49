// Command inspect dumps the durable tables for debugging: sessions, queue
// index entries, and reports. Read-only; safe to point at a stopped daemon's
// store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "", "Path to the badger store")
	prefix := flag.String("prefix", "session:", "Prefix to scan (session: | queue: | report:)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("Missing -db flag")
	}
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headersFor(*prefix))
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			row, err := rowFor(*prefix, key, value)
			if err != nil {
				// Keep scanning; one bad record should not hide the rest.
				fmt.Printf("Error decoding key %s: %v\n", key, err)
				continue
			}
			table.Append(row)
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}
	table.Render()
}

func headersFor(prefix string) []string {
	switch prefix {
	case "report:":
		return []string{"Key", "Reporter", "Partner", "Reason", "Created At"}
	case "queue:":
		return []string{"Key"}
	default:
		return []string{"Key", "Queued", "Partner", "Updated At"}
	}
}

func rowFor(prefix, key string, value []byte) ([]string, error) {
	switch prefix {
	case "report:":
		var r struct {
			ReporterID string  `json:"reporter_id"`
			PartnerID  *string `json:"partner_id"`
			Reason     string  `json:"reason"`
			CreatedAt  int64   `json:"created_at"`
		}
		if err := json.Unmarshal(value, &r); err != nil {
			return nil, err
		}
		return []string{key, r.ReporterID, orNone(r.PartnerID), r.Reason, formatNanos(r.CreatedAt)}, nil
	case "queue:":
		return []string{key}, nil
	default:
		var s struct {
			Queued    bool    `json:"queued"`
			PartnerID *string `json:"partner_id"`
			UpdatedAt int64   `json:"updated_at"`
		}
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, err
		}
		return []string{key, fmt.Sprintf("%t", s.Queued), orNone(s.PartnerID), formatNanos(s.UpdatedAt)}, nil
	}
}

func orNone(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatNanos(nanos int64) string {
	return time.Unix(0, nanos).UTC().Format(time.RFC3339)
}
