package inventory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kestrelgames/armory/internal/domain"
	"github.com/kestrelgames/armory/internal/metrics"
)

// The persisted form is one record per line, no header:
//
//	RARITY,ITEM_NAME,EPIC_SUBLEVEL,QUANTITY
//
// Fields are split on bare commas with no quoting or escaping, so item names
// must not contain commas. Records are emitted in map-iteration order, which
// varies across runs.

const recordFieldCount = 4

// Save writes every stack to the file at path, creating or truncating it.
func (inv *Inventory) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateSaveFileFailed, err)
	}

	w := bufio.NewWriter(f)
	if err := inv.SaveTo(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf(ErrMsgWriteSaveFileFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf(ErrMsgCloseSaveFileFailed, err)
	}

	inv.logger().Info(LogMsgInventorySaved, "path", path)
	return nil
}

// SaveTo writes every stack as one CSV record to w.
func (inv *Inventory) SaveTo(w io.Writer) error {
	for rarity, stacks := range inv.stacks {
		for item, quantity := range stacks {
			if _, err := fmt.Fprintf(w, "%s,%s,%d,%d\n", rarity, item.Name, item.SubLevel, quantity); err != nil {
				return fmt.Errorf(ErrMsgWriteSaveFileFailed, err)
			}
			metrics.StacksSaved.Inc()
		}
	}
	return nil
}

// Load reads the file at path and accumulates its records onto the current
// inventory state. A missing or unreadable file is an I/O error, distinct
// from both domain error kinds.
func (inv *Inventory) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf(ErrMsgOpenLoadFileFailed, err)
	}
	defer f.Close()

	return inv.LoadFrom(f)
}

// LoadFrom reads CSV records from r, adding each parsed row through Add so
// loading accumulates onto any pre-existing state rather than replacing it.
//
// A line is skipped silently when it is blank, does not split into exactly
// four fields, carries an unrecognized rarity token, or has a non-integer
// sub-level or quantity. Rows that Add rejects (empty name, non-positive
// quantity) count as skipped too. A file of only malformed lines loads
// successfully with no change.
func (inv *Inventory) LoadFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	loaded, skipped := 0, 0

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, quantity, ok := parseRecord(line)
		if !ok {
			skipped++
			metrics.RowsSkipped.Inc()
			continue
		}

		if err := inv.Add(item, quantity); err != nil {
			skipped++
			metrics.RowsSkipped.Inc()
			continue
		}
		loaded++
		metrics.StacksLoaded.Inc()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf(ErrMsgReadLoadFileFailed, err)
	}

	inv.logger().Info(LogMsgInventoryLoaded, "stacks", loaded, "skipped", skipped)
	return nil
}

// parseRecord splits one line into an item and quantity, reporting ok=false
// for any malformed field.
func parseRecord(line string) (domain.Item, int, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != recordFieldCount {
		return domain.Item{}, 0, false
	}

	rarity, ok := domain.ParseRarity(strings.TrimSpace(parts[0]))
	if !ok {
		return domain.Item{}, 0, false
	}

	name := strings.TrimSpace(parts[1])

	subLevel, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return domain.Item{}, 0, false
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return domain.Item{}, 0, false
	}

	return domain.NewItemAt(name, rarity, subLevel), quantity, true
}
