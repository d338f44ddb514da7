// Package report renders the analytics report as plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
)

// farthestTop is how many senders and receivers the farthest section lists.
const farthestTop = 1

// TextRenderer writes the report as "=== Title ===" sections separated by
// blank lines.
type TextRenderer struct{}

var _ ports.ReportRenderer = TextRenderer{}

func NewTextRenderer() TextRenderer {
	return TextRenderer{}
}

// Render writes every section to w in order.
func (r TextRenderer) Render(w io.Writer, a *services.Analytics) error {
	var sb strings.Builder

	r.parcelSizes(&sb, a)
	r.mostUsedSizes(&sb, a, "Locker_usage_section")
	r.mostUsedSizes(&sb, a, "Most Frequently Used Parcel Sizes")
	r.farthestParties(&sb, a)
	r.longestDelivery(&sb, a)

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderFile replaces the file at path with the report, creating missing
// parent directories.
func (r TextRenderer) RenderFile(path string, a *services.Analytics) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err = r.Render(f, a); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

func (TextRenderer) parcelSizes(sb *strings.Builder, a *services.Analytics) {
	sb.WriteString("=== Parcel Sizes ===\n")
	for _, p := range a.Parcels() {
		fmt.Fprintf(sb, "Parcel ID: %s, Size: %s\n", p.ID(), services.SizeOf(p))
	}
	sb.WriteString("\n")
}

func (TextRenderer) mostUsedSizes(sb *strings.Builder, a *services.Analytics, title string) {
	fmt.Fprintf(sb, "=== %s ===\n", title)

	u := services.NewUsage(a.LockerIDs()...)
	mostUsed := a.MostUsedSizes(u)
	for _, id := range u.Lockers() {
		names := make([]string, 0, len(mostUsed[id]))
		for _, size := range mostUsed[id] {
			names = append(names, size.String())
		}
		fmt.Fprintf(sb, "Locker ID: %s, Most Frequently Used Sizes: %s\n", id, strings.Join(names, ", "))
	}
	sb.WriteString("\n")
}

func (TextRenderer) farthestParties(sb *strings.Builder, a *services.Analytics) {
	ranking := a.TopParties(farthestTop)

	sb.WriteString("=== Senders and Recipients with Farthest Deliveries ===\n")
	sb.WriteString("Farthest Senders:\n")
	for _, p := range ranking.Senders {
		fmt.Fprintf(sb, "  %s, Farthest Locker: %s, Distance: %.2f km\n", p.Email, p.FarthestLocker, p.MaxDistanceKm)
	}
	sb.WriteString("\nFarthest Recipients:\n")
	for _, p := range ranking.Receivers {
		fmt.Fprintf(sb, "  %s, Farthest Locker: %s, Distance: %.2f km\n", p.Email, p.FarthestLocker, p.MaxDistanceKm)
	}
	sb.WriteString("\n")
}

func (TextRenderer) longestDelivery(sb *strings.Builder, a *services.Analytics) {
	sb.WriteString("=== Longest Delivery ===\n")
	if longest, ok := a.LongestDelivery(); ok {
		fmt.Fprintf(sb, "Sender: %s, Longest Delivery Time: %d days\n", longest.SenderEmail, longest.Days)
	} else {
		sb.WriteString("Sender: none, Longest Delivery Time: 0 days\n")
	}
	sb.WriteString("\n")
}
