package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

// flexInt64 accepts the number shapes the model has been seen emitting:
// plain integers, floats, and formatted strings like "30.000.000".
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number string: %w", err)
		}
		*f = flexInt64(quote.ParseAmount(unquoted))
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt64(v)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*f = flexInt64(int64(math.Round(v)))
	return nil
}

// flexInt is flexInt64 for the narrow int fields in style.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var wide flexInt64
	if err := wide.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexInt(wide)
	return nil
}

type itemPatch struct {
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	Quantity    flexInt64 `json:"quantity"`
	UnitPrice   flexInt64 `json:"unitPrice"`
}

type groupPatch struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Items    []itemPatch `json:"items"`
}

type companyInfoPatch struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"taxId"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

type bankInfoPatch struct {
	BankName    *string `json:"bankName"`
	AccountNo   *string `json:"accountNo"`
	AccountName *string `json:"accountName"`
}

type representativePatch struct {
	Title *string `json:"title"`
	Name  *string `json:"name"`
}

type stylePatch struct {
	FontFamily      *string  `json:"fontFamily"`
	HeadingFont     *string  `json:"headingFont"`
	BodyFontSize    *flexInt `json:"bodyFontSize"`
	HeadingFontSize *flexInt `json:"headingFontSize"`
	PrimaryColor    *string  `json:"primaryColor"`
	SecondaryColor  *string  `json:"secondaryColor"`
	AccentColor     *string  `json:"accentColor"`
	TextColor       *string  `json:"textColor"`
	TableStyle      *string  `json:"tableStyle"`
	LayoutVariant   *string  `json:"layoutVariant"`
	MetaGridColumns *flexInt `json:"metaGridColumns"`
	ShowLogo        *bool    `json:"showLogo"`
	PaperSize       *string  `json:"paperSize"`
	CustomCSS       *string  `json:"customCss"`
}

// documentPatch mirrors the document with optional fields so an omitted
// field is distinguishable from an explicitly set one. Totals are absent
// on purpose: recalculation is authoritative over anything the model sends.
type documentPatch struct {
	QuoteNo      *string              `json:"quoteNo"`
	Date         *string              `json:"date"`
	CustomerName *string              `json:"customerName"`
	CompanyName  *string              `json:"companyName"`
	ProjectName  *string              `json:"projectName"`
	QuoteTitle   *string              `json:"quoteTitle"`
	Subtitle     *string              `json:"subtitle"`
	Groups       *[]groupPatch        `json:"groups"`
	Notes        *[]string            `json:"notes"`
	BankInfo     *bankInfoPatch       `json:"bankInfo"`
	CompanyInfo  *companyInfoPatch    `json:"companyInfo"`
	CustomerRep  *representativePatch `json:"customerRep"`
	CompanyRep   *representativePatch `json:"companyRep"`
	Style        *stylePatch          `json:"style"`
}

// mergeDocument reconciles a model-supplied document against the current
// one. Top-level scalars override when present; nested records are merged
// key by key so omitted fields keep their previous values; groups and notes
// are replaced wholesale since the model is asked to return them in full.
// The result is clamped and fully recalculated with renumbering.
func mergeDocument(current quote.Document, raw json.RawMessage) (quote.Document, error) {
	var patch documentPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return quote.Document{}, fmt.Errorf("decoding updated quote: %w", err)
	}

	out := current.Clone()

	setString(&out.QuoteNo, patch.QuoteNo)
	setString(&out.Date, patch.Date)
	setString(&out.CustomerName, patch.CustomerName)
	setString(&out.CompanyName, patch.CompanyName)
	setString(&out.ProjectName, patch.ProjectName)
	setString(&out.QuoteTitle, patch.QuoteTitle)
	setString(&out.Subtitle, patch.Subtitle)

	if patch.Groups != nil {
		out.Groups = buildGroups(*patch.Groups)
	}
	if patch.Notes != nil {
		out.Notes = append([]string(nil), *patch.Notes...)
	}

	if patch.CompanyInfo != nil {
		setString(&out.CompanyInfo.Name, patch.CompanyInfo.Name)
		setString(&out.CompanyInfo.TaxID, patch.CompanyInfo.TaxID)
		setString(&out.CompanyInfo.Address, patch.CompanyInfo.Address)
		setString(&out.CompanyInfo.Email, patch.CompanyInfo.Email)
		setString(&out.CompanyInfo.Phone, patch.CompanyInfo.Phone)
	}
	if patch.BankInfo != nil {
		setString(&out.BankInfo.BankName, patch.BankInfo.BankName)
		setString(&out.BankInfo.AccountNo, patch.BankInfo.AccountNo)
		setString(&out.BankInfo.AccountName, patch.BankInfo.AccountName)
	}
	if patch.CustomerRep != nil {
		setString(&out.CustomerRep.Title, patch.CustomerRep.Title)
		setString(&out.CustomerRep.Name, patch.CustomerRep.Name)
	}
	if patch.CompanyRep != nil {
		setString(&out.CompanyRep.Title, patch.CompanyRep.Title)
		setString(&out.CompanyRep.Name, patch.CompanyRep.Name)
	}

	if patch.Style != nil {
		if out.Style == nil {
			out.Style = &quote.Style{}
		}
		mergeStyle(out.Style, patch.Style)
	}
	quote.ClampStyle(out.Style)

	quote.RecalculateRenumber(&out)
	return out, nil
}

func buildGroups(patches []groupPatch) []quote.Group {
	groups := make([]quote.Group, 0, len(patches))
	for i, gp := range patches {
		id := gp.ID
		if id == "" {
			id = fmt.Sprintf("%02d", i+1)
		}
		group := quote.Group{
			ID:       id,
			Title:    gp.Title,
			Subtitle: gp.Subtitle,
			Items:    make([]quote.Item, 0, len(gp.Items)),
		}
		for _, ip := range gp.Items {
			group.Items = append(group.Items, quote.Item{
				Description: ip.Description,
				Unit:        ip.Unit,
				Quantity:    int64(ip.Quantity),
				UnitPrice:   int64(ip.UnitPrice),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

func mergeStyle(dst *quote.Style, patch *stylePatch) {
	setString(&dst.FontFamily, patch.FontFamily)
	setString(&dst.HeadingFont, patch.HeadingFont)
	if patch.BodyFontSize != nil {
		dst.BodyFontSize = int(*patch.BodyFontSize)
	}
	if patch.HeadingFontSize != nil {
		dst.HeadingFontSize = int(*patch.HeadingFontSize)
	}
	setString(&dst.PrimaryColor, patch.PrimaryColor)
	setString(&dst.SecondaryColor, patch.SecondaryColor)
	setString(&dst.AccentColor, patch.AccentColor)
	setString(&dst.TextColor, patch.TextColor)
	setString(&dst.TableStyle, patch.TableStyle)
	setString(&dst.LayoutVariant, patch.LayoutVariant)
	if patch.MetaGridColumns != nil {
		dst.MetaGridColumns = int(*patch.MetaGridColumns)
	}
	if patch.ShowLogo != nil {
		dst.ShowLogo = *patch.ShowLogo
	}
	setString(&dst.PaperSize, patch.PaperSize)
	setString(&dst.CustomCSS, patch.CustomCSS)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
