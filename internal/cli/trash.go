package cli

import (
	"context"
	"fmt"
)

// runTrash печатает содержимое корзины, новые записи первыми
func (c *Cli) runTrash(ctx context.Context) error {
	entries, err := c.lifecycle.Trash(ctx)
	if err != nil {
		return fmt.Errorf("failed to load trash: %w", err)
	}

	c.io.Printf("=== Trash (%d) ===\n", len(entries))
	if len(entries) == 0 {
		c.io.Println("Trash is empty.")
		return nil
	}

	for n, e := range entries {
		c.printRecordLine(n+1, e.Record())
		c.io.Printf("   From: %s\n", e.OriginCategory())
	}
	return nil
}

// runRestore возвращает запись из корзины в исходную категорию
func (c *Cli) runRestore(ctx context.Context, id string, yes bool) error {
	entry, err := c.lifecycle.TrashEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load trash entry %s: %w", id, err)
	}

	if err := c.confirm(fmt.Sprintf("Restore %q to %s?", entry.Name, entry.OriginCategory()), yes); err != nil {
		return err
	}

	restored, err := c.lifecycle.RestoreFromTrashByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to restore record: %w", err)
	}

	c.io.Printf("Restored %s to %s\n", restored.Name, restored.OriginCategory())
	if restored.ID != entry.ID {
		c.io.Printf("New ID: %s\n", restored.ID)
	}
	return nil
}

// runPurge окончательно удаляет запись из корзины
func (c *Cli) runPurge(ctx context.Context, id string, yes bool) error {
	entry, err := c.lifecycle.TrashEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load trash entry %s: %w", id, err)
	}

	if err := c.confirm(fmt.Sprintf("Permanently delete %q? This cannot be undone.", entry.Name), yes); err != nil {
		return err
	}

	if _, err := c.lifecycle.PermanentlyDeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	c.io.Printf("Permanently deleted %s\n", entry.Name)
	return nil
}
