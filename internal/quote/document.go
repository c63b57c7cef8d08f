package quote

// Item is one priced line within a group. Total is always derived as
// Quantity * UnitPrice by Recalculate; values supplied from outside are
// overwritten.
type Item struct {
	No          int64  `json:"no"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}

// Group is a titled cluster of items forming one subtotal row. ID is a
// display label ("01", "02", ...) assigned on creation, not a database key.
type Group struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Items    []Item `json:"items"`
	Subtotal int64  `json:"subtotal"`
}

// CompanyInfo holds the issuing company block.
type CompanyInfo struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// BankInfo holds the payment details block.
type BankInfo struct {
	BankName    string `json:"bankName"`
	AccountNo   string `json:"accountNo"`
	AccountName string `json:"accountName"`
}

// Representative is a signature block entry.
type Representative struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// Style carries the presentation settings the editor and the assistant may
// adjust. The document core treats it as opaque except for the brand-safety
// clamp in ClampStyle.
type Style struct {
	FontFamily      string `json:"fontFamily"`
	HeadingFont     string `json:"headingFont"`
	BodyFontSize    int    `json:"bodyFontSize"`
	HeadingFontSize int    `json:"headingFontSize"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor"`
	TextColor       string `json:"textColor"`
	TableStyle      string `json:"tableStyle"`
	LayoutVariant   string `json:"layoutVariant,omitempty"`
	MetaGridColumns int    `json:"metaGridColumns,omitempty"`
	ShowLogo        bool   `json:"showLogo"`
	PaperSize       string `json:"paperSize"`
	CustomCSS       string `json:"customCss,omitempty"`
}

// Document is the aggregate root for one quotation. All money values are
// integer VND.
type Document struct {
	QuoteNo      string         `json:"quoteNo"`
	Date         string         `json:"date"`
	CustomerName string         `json:"customerName"`
	CompanyName  string         `json:"companyName"`
	ProjectName  string         `json:"projectName"`
	QuoteTitle   string         `json:"quoteTitle"`
	Subtitle     string         `json:"subtitle"`
	Groups       []Group        `json:"groups"`
	TotalQuote   int64          `json:"totalQuote"`
	VAT          int64          `json:"vat"`
	GrandTotal   int64          `json:"grandTotal"`
	Notes        []string       `json:"notes"`
	BankInfo     BankInfo       `json:"bankInfo"`
	CompanyInfo  CompanyInfo    `json:"companyInfo"`
	CustomerRep  Representative `json:"customerRep"`
	CompanyRep   Representative `json:"companyRep"`
	Style        *Style         `json:"style,omitempty"`
}

// Clone returns a deep copy. Mutation operators work on clones so callers
// keep an untouched snapshot of the previous state.
func (d Document) Clone() Document {
	out := d
	out.Groups = make([]Group, len(d.Groups))
	for i, g := range d.Groups {
		cg := g
		cg.Items = make([]Item, len(g.Items))
		copy(cg.Items, g.Items)
		out.Groups[i] = cg
	}
	out.Notes = make([]string, len(d.Notes))
	copy(out.Notes, d.Notes)
	if d.Style != nil {
		style := *d.Style
		out.Style = &style
	}
	return out
}
