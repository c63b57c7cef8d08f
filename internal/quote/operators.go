package quote

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder strings stamped on newly created structure, matching the
// browser editor's defaults.
const (
	placeholderGroupTitle    = "NHÓM DỊCH VỤ MỚI"
	placeholderItemDesc      = "Mô tả dịch vụ"
	placeholderGroupSubtitle = "Mô tả nhóm"
	defaultUnit              = "Gói"
)

var (
	ErrUnknownOp       = errors.New("unknown mutation op")
	ErrUnknownField    = errors.New("unknown field path")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMissingArgument = errors.New("missing mutation argument")
)

// Op names accepted by Apply.
const (
	OpSetField           = "set_field"
	OpSetGroupTitle      = "set_group_title"
	OpSetGroupSubtitle   = "set_group_subtitle"
	OpToggleSubtitle     = "toggle_subtitle"
	OpSetItemDescription = "set_item_description"
	OpSetNote            = "set_note"
	OpSetGroupPrice      = "set_group_price"
	OpSetGroupQuantity   = "set_group_quantity"
	OpAddGroup           = "add_group"
	OpRemoveGroup        = "remove_group"
	OpAddItem            = "add_item"
	OpRemoveItem         = "remove_item"
)

// Mutation names one structural edit against a document. Index fields are
// pointers so "absent" and "zero" stay distinguishable during validation.
type Mutation struct {
	Op         string `json:"op" validate:"required"`
	Path       string `json:"path,omitempty"`
	GroupIndex *int   `json:"groupIndex,omitempty"`
	ItemIndex  *int   `json:"itemIndex,omitempty"`
	NoteIndex  *int   `json:"noteIndex,omitempty"`
	Value      string `json:"value,omitempty"`
}

// Apply runs one mutation operator over a deep copy of doc and returns the
// recalculated result. The input document is never modified. Out-of-range
// indexes and unknown ops/paths are rejected, everything else is total:
// inconsistencies introduced by an edit are healed by the recalculation pass.
func Apply(doc Document, m Mutation) (Document, error) {
	out := doc.Clone()

	switch m.Op {
	case OpSetField:
		if err := setField(&out, m.Path, m.Value); err != nil {
			return doc, err
		}

	case OpSetGroupTitle:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		group.Title = m.Value

	case OpSetGroupSubtitle:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		group.Subtitle = m.Value

	case OpToggleSubtitle:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		if group.Subtitle != "" {
			group.Subtitle = ""
		} else {
			group.Subtitle = placeholderGroupSubtitle
		}

	case OpSetItemDescription:
		item, err := itemAt(&out, m.GroupIndex, m.ItemIndex)
		if err != nil {
			return doc, err
		}
		item.Description = m.Value

	case OpSetNote:
		if m.NoteIndex == nil {
			return doc, fmt.Errorf("%w: noteIndex", ErrMissingArgument)
		}
		idx := *m.NoteIndex
		if idx < 0 || idx >= len(out.Notes) {
			return doc, fmt.Errorf("%w: note %d", ErrIndexOutOfRange, idx)
		}
		out.Notes[idx] = m.Value

	case OpSetGroupPrice:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		// The subtotal cell is edited as one figure and attributed to the
		// group's first item ("single representative item" convention).
		// Groups created through add_group always start with one item, so
		// this is exact in the common case; with assistant-grown groups the
		// recalculation pass makes the first item's price win.
		amount := ParseAmount(m.Value)
		group.Subtotal = amount
		if len(group.Items) > 0 {
			group.Items[0].UnitPrice = amount
			group.Items[0].Total = amount
		}

	case OpSetGroupQuantity:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		if len(group.Items) > 0 {
			group.Items[0].Quantity = ParseAmount(m.Value)
		}

	case OpAddGroup:
		out.Groups = append(out.Groups, Group{
			ID:    nextGroupID(out.Groups),
			Title: placeholderGroupTitle,
			Items: []Item{{No: 1, Description: placeholderItemDesc, Unit: defaultUnit, Quantity: 1}},
		})

	case OpRemoveGroup:
		if m.GroupIndex == nil {
			return doc, fmt.Errorf("%w: groupIndex", ErrMissingArgument)
		}
		idx := *m.GroupIndex
		if idx < 0 || idx >= len(out.Groups) {
			return doc, fmt.Errorf("%w: group %d", ErrIndexOutOfRange, idx)
		}
		out.Groups = append(out.Groups[:idx], out.Groups[idx+1:]...)

	case OpAddItem:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		group.Items = append(group.Items, Item{
			No:          int64(len(group.Items) + 1),
			Description: placeholderItemDesc,
			Unit:        defaultUnit,
			Quantity:    1,
		})

	case OpRemoveItem:
		group, err := groupAt(&out, m.GroupIndex)
		if err != nil {
			return doc, err
		}
		if m.ItemIndex == nil {
			return doc, fmt.Errorf("%w: itemIndex", ErrMissingArgument)
		}
		idx := *m.ItemIndex
		if idx < 0 || idx >= len(group.Items) {
			return doc, fmt.Errorf("%w: item %d", ErrIndexOutOfRange, idx)
		}
		group.Items = append(group.Items[:idx], group.Items[idx+1:]...)

	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownOp, m.Op)
	}

	Recalculate(&out)
	return out, nil
}

func groupAt(d *Document, idx *int) (*Group, error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: groupIndex", ErrMissingArgument)
	}
	if *idx < 0 || *idx >= len(d.Groups) {
		return nil, fmt.Errorf("%w: group %d", ErrIndexOutOfRange, *idx)
	}
	return &d.Groups[*idx], nil
}

func itemAt(d *Document, groupIdx, itemIdx *int) (*Item, error) {
	group, err := groupAt(d, groupIdx)
	if err != nil {
		return nil, err
	}
	if itemIdx == nil {
		return nil, fmt.Errorf("%w: itemIndex", ErrMissingArgument)
	}
	if *itemIdx < 0 || *itemIdx >= len(group.Items) {
		return nil, fmt.Errorf("%w: item %d", ErrIndexOutOfRange, *itemIdx)
	}
	return &group.Items[*itemIdx], nil
}

// nextGroupID produces the next ordinal display label, zero padded to the
// width already in use ("04" -> "05", "004" -> "005").
func nextGroupID(groups []Group) string {
	width := 2
	for _, g := range groups {
		if len(g.ID) > width {
			width = len(g.ID)
		}
	}
	return fmt.Sprintf("%0*d", width, len(groups)+1)
}

func setField(d *Document, path, value string) error {
	switch path {
	case "quoteNo":
		d.QuoteNo = value
	case "date":
		d.Date = value
	case "customerName":
		d.CustomerName = value
	case "companyName":
		d.CompanyName = value
	case "projectName":
		d.ProjectName = value
	case "quoteTitle":
		d.QuoteTitle = value
	case "subtitle":
		d.Subtitle = value
	case "companyInfo.name":
		d.CompanyInfo.Name = value
	case "companyInfo.taxId":
		d.CompanyInfo.TaxID = value
	case "companyInfo.address":
		d.CompanyInfo.Address = value
	case "companyInfo.email":
		d.CompanyInfo.Email = value
	case "companyInfo.phone":
		d.CompanyInfo.Phone = value
	case "bankInfo.bankName":
		d.BankInfo.BankName = value
	case "bankInfo.accountNo":
		d.BankInfo.AccountNo = value
	case "bankInfo.accountName":
		d.BankInfo.AccountName = value
	case "customerRep.title":
		d.CustomerRep.Title = value
	case "customerRep.name":
		d.CustomerRep.Name = value
	case "companyRep.title":
		d.CompanyRep.Title = value
	case "companyRep.name":
		d.CompanyRep.Name = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, strings.TrimSpace(path))
	}
	return nil
}
