// Package export genera el estado de cuenta de una contraparte en XML,
// formato de intercambio con el software del contador.
package export

import (
	"github.com/beevik/etree"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/ledger"
)

// XMLStatementBuilder serializa un estado de cuenta (contraparte + asientos
// + totales) a XML indentado.
type XMLStatementBuilder struct{}

// NewXMLStatementBuilder construye el exportador.
func NewXMLStatementBuilder() *XMLStatementBuilder {
	return &XMLStatementBuilder{}
}

// Build genera el documento:
//
//	<statement>
//	  <party id="..." kind="..."><name>...</name></party>
//	  <entries>
//	    <entry id="..." type="debit|credit">...</entry>
//	  </entries>
//	  <totals><debits/><credits/><net_balance/></totals>
//	</statement>
func (b *XMLStatementBuilder) Build(party *entity.Party, entries []entity.LedgerEntry, totals ledger.Totals) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("statement")

	p := root.CreateElement("party")
	p.CreateAttr("id", party.ID)
	p.CreateAttr("kind", party.Kind)
	p.CreateElement("name").SetText(party.Name)
	if party.Email != "" {
		p.CreateElement("email").SetText(party.Email)
	}

	list := root.CreateElement("entries")
	for _, e := range entries {
		el := list.CreateElement("entry")
		el.CreateAttr("id", e.ID)
		el.CreateAttr("type", e.TransactionType)
		el.CreateElement("date").SetText(e.Date.Format("2006-01-02"))
		el.CreateElement("amount").SetText(e.Amount.StringFixed(2))
		el.CreateElement("reference").SetText(e.Reference)
		if e.Description != "" {
			el.CreateElement("description").SetText(e.Description)
		}
	}

	t := root.CreateElement("totals")
	t.CreateElement("debits").SetText(totals.TotalDebits.StringFixed(2))
	t.CreateElement("credits").SetText(totals.TotalCredits.StringFixed(2))
	t.CreateElement("net_balance").SetText(totals.NetBalance.StringFixed(2))

	doc.Indent(2)
	return doc.WriteToBytes()
}
