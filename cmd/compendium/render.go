package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/annotate"
	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/campaign"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-compendium/internal/refstore"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

func (p printer) line(w io.Writer, key string, args ...any) {
	fmt.Fprintln(w, p.sprintf(key, args...))
}

// gold formats an amount in gold pieces with the language's decimal mark.
func (p printer) gold(c wealth.Copper) string {
	return p.sprintf("label.gold", c.Gold())
}

func (p printer) field(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", p.label(key), value)
}

// record prints one record with its description run through the
// annotation processor.
func (p printer) record(w io.Writer, r *refstore.Record) {
	attrs := r.Attributes

	p.line(w, "record.header", r.Name, attrs.Level)
	p.field(w, "label.rarity", p.label("rarity."+string(attrs.Rarity)))
	p.field(w, "label.traits", strings.Join(attrs.Traits, ", "))
	p.field(w, "label.traditions", strings.Join(attrs.Traditions, ", "))
	if attrs.Price > 0 {
		p.field(w, "label.price", p.gold(attrs.Price))
	}
	p.field(w, "label.source", attrs.Publication)
	fmt.Fprintln(w)

	content := r.Content(p.lang)
	if content.Description == "" {
		fmt.Fprintln(w, p.label("label.no_description"))
		return
	}
	fmt.Fprintln(w, annotate.Process(content.Description, p.lang))
	if content.PublicNotes != "" && content.PublicNotes != content.Description {
		fmt.Fprintln(w)
		fmt.Fprintln(w, annotate.Process(content.PublicNotes, p.lang))
	}
}

func (p printer) summaries(w io.Writer, records []*refstore.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, p.label("label.no_results"))
		return
	}
	for _, r := range records {
		fmt.Fprintln(w, summaryLine(r))
	}
}

func (p printer) loot(w io.Writer, out *loot.GenerateLootOutput) {
	p.line(w, "loot.header",
		p.label("difficulty."+string(out.Difficulty)),
		out.Level,
		p.label("creature."+string(out.CreatureType)))
	p.line(w, "loot.value", out.FinalValue, out.BaseValue)

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.label("loot.currency"))
	for _, c := range out.Coins {
		fmt.Fprintf(w, "  %s\n", p.sprintf("coin."+string(c.Coin), c.Count))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.label("loot.items"))
	if len(out.Items) == 0 {
		fmt.Fprintf(w, "  %s\n", p.label("loot.none"))
		return
	}
	p.items(w, out.Items)
}

func (p printer) items(w io.Writer, items []*loot.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", p.sprintf("loot.item",
			it.Name, it.Level, p.label("rarity."+string(it.Rarity)), it.Price.Gold()))
	}
}

func (p printer) characterPackage(w io.Writer, out *loot.GenerateCharacterPackageOutput) {
	p.line(w, "package.header", out.Level)
	p.line(w, "package.currency", out.Currency)
	p.line(w, "package.lump_sum", out.LumpSum)

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.label("package.permanent"))
	for _, slot := range out.Slots {
		fmt.Fprintf(w, "  %s\n", p.sprintf("package.permanent_slot", slot.Count, slot.Level))
	}
	p.items(w, out.PermanentItems)

	if len(out.Consumables) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.label("package.consumables"))
		p.items(w, out.Consumables)
	}
}

func (p printer) campaign(w io.Writer, c *entities.Campaign) {
	p.line(w, "campaign.row", c.ID, c.Name, c.Level, len(c.Characters))
	p.line(w, "campaign.report.pool", c.TotalLootValue.Gold())

	for _, ch := range c.Characters {
		fmt.Fprintf(w, "  %s  %s  %d  %s\n", ch.ID, ch.Name, ch.Level, p.gold(ch.AssignedWealth))
	}
	for _, enc := range c.Encounters {
		fmt.Fprintf(w, "  %s  %s  %s  %d  %s  %s\n",
			enc.ID,
			enc.Date.Format("2006-01-02"),
			p.label("difficulty."+string(enc.Difficulty)),
			enc.Level,
			p.gold(enc.TotalValue),
			enc.Description)
	}
}

func (p printer) report(w io.Writer, out *campaign.WealthReportOutput) {
	c := out.Campaign

	p.line(w, "campaign.report.header", c.Name, c.Level)
	p.line(w, "campaign.report.party",
		c.TotalLootValue.Gold(), out.PartyExpected.Total, p.label("status."+string(out.PartyStatus)))
	for _, r := range out.Characters {
		fmt.Fprintf(w, "  %s\n", p.sprintf("campaign.report.row",
			r.Character.Name,
			r.Character.AssignedWealth.Gold(),
			r.Expected.LumpSum,
			p.label("status."+string(r.Status))))
	}
	p.line(w, "campaign.report.unassigned", out.Unassigned.Gold())
}
