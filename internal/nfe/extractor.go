// Package nfe extracts buyer and sale-line data from Brazilian electronic
// tax invoice (NF-e) XML documents.
//
// Extraction is a fixed, schema-driven mapping: one invoice document in,
// one flat record per sale line out, with the invoice- and buyer-level
// fields repeated on every record. There is no validation against the
// official NF-e schema; only the fields listed on LineRecord are read.
package nfe

import "fmt"

// NotInformed is the literal placed in optional buyer fields that are
// absent from the source document.
const NotInformed = "Não informado"

// LineRecord is one exported row: a single sale line (det/prod) plus the
// invoice-level and buyer-level fields, which are identical across all
// records of the same document.
type LineRecord struct {
	NFNumber      string
	IssuedAt      string
	BuyerName     string
	BuyerDocument string
	BuyerAddress  string
	BuyerPhone    string
	BuyerEmail    string
	ProductCode   string
	ProductName   string
	Quantity      float64
	UnitValue     float64
	TotalProducts float64
	TotalFreight  float64
	TotalInvoice  float64
}

// Extract parses an NF-e XML document and returns one LineRecord per sale
// line, in document order. It never returns partial results: either the
// full record set or a *Error.
//
// A document with zero sale lines yields an empty, non-nil slice; callers
// must treat that as "nothing to show".
func Extract(xmlBytes []byte) ([]LineRecord, error) {
	root, err := parseTree(xmlBytes)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, msg: "invalid XML", err: err}
	}

	nfeRoot := locateInvoiceRoot(root)
	if nfeRoot == nil {
		return nil, &Error{
			Kind: KindUnrecognizedStructure,
			msg:  "cannot locate invoice root: no <NFe> element at the document root or one level below it",
		}
	}

	infNFe, err := requiredChild(nfeRoot, "NFe", "infNFe")
	if err != nil {
		return nil, err
	}

	// Buyer (dest) and its address (enderDest).
	dest, err := requiredChild(infNFe, "infNFe", "dest")
	if err != nil {
		return nil, err
	}
	enderDest, err := requiredChild(dest, "dest", "enderDest")
	if err != nil {
		return nil, err
	}

	buyerName, err := requiredText(dest, "dest", "xNome")
	if err != nil {
		return nil, err
	}

	address, err := composeAddress(enderDest)
	if err != nil {
		return nil, err
	}

	// Optional buyer fields resolve to the NotInformed sentinel only here,
	// at record construction, never earlier.
	document := NotInformed
	if cpf, ok := optionalText(dest, "CPF"); ok {
		document = cpf
	} else if cnpj, ok := optionalText(dest, "CNPJ"); ok {
		document = cnpj
	}

	email := NotInformed
	if v, ok := optionalText(dest, "email"); ok {
		email = v
	}

	// The phone lives on the address sub-tree, not on dest.
	phone := NotInformed
	if v, ok := optionalText(enderDest, "fone"); ok {
		phone = v
	}

	// Sale identifiers.
	ide, err := requiredChild(infNFe, "infNFe", "ide")
	if err != nil {
		return nil, err
	}
	nfNumber, err := requiredText(ide, "ide", "nNF")
	if err != nil {
		return nil, err
	}
	issuedAt, err := requiredText(ide, "ide", "dhEmi")
	if err != nil {
		return nil, err
	}

	// Invoice totals.
	total, err := requiredChild(infNFe, "infNFe", "total")
	if err != nil {
		return nil, err
	}
	icmsTot, err := requiredChild(total, "total", "ICMSTot")
	if err != nil {
		return nil, err
	}
	totalInvoice, err := requiredFloat(icmsTot, "ICMSTot", "vNF")
	if err != nil {
		return nil, err
	}
	totalProducts, err := requiredFloat(icmsTot, "ICMSTot", "vProd")
	if err != nil {
		return nil, err
	}
	totalFreight, err := requiredFloat(icmsTot, "ICMSTot", "vFrete")
	if err != nil {
		return nil, err
	}

	// Sale lines, in document order.
	dets := infNFe.findAll("det")
	records := make([]LineRecord, 0, len(dets))
	for _, det := range dets {
		prod, err := requiredChild(det, "det", "prod")
		if err != nil {
			return nil, err
		}
		code, err := requiredText(prod, "prod", "cProd")
		if err != nil {
			return nil, err
		}
		name, err := requiredText(prod, "prod", "xProd")
		if err != nil {
			return nil, err
		}
		quantity, err := requiredFloat(prod, "prod", "qCom")
		if err != nil {
			return nil, err
		}
		unitValue, err := requiredFloat(prod, "prod", "vUnCom")
		if err != nil {
			return nil, err
		}

		records = append(records, LineRecord{
			NFNumber:      nfNumber,
			IssuedAt:      issuedAt,
			BuyerName:     buyerName,
			BuyerDocument: document,
			BuyerAddress:  address,
			BuyerPhone:    phone,
			BuyerEmail:    email,
			ProductCode:   code,
			ProductName:   name,
			Quantity:      quantity,
			UnitValue:     unitValue,
			TotalProducts: totalProducts,
			TotalFreight:  totalFreight,
			TotalInvoice:  totalInvoice,
		})
	}

	return records, nil
}

// locateInvoiceRoot finds the namespaced <NFe> element. Real documents come
// either as a bare <NFe> root or wrapped in a processing element such as
// <nfeProc>. The search is deliberately shallow: the root itself or its
// direct children, never deeper.
func locateInvoiceRoot(root *element) *element {
	if root.space == Namespace && root.local == "NFe" {
		return root
	}
	return root.find("NFe")
}

// composeAddress builds the buyer's postal address string from the
// enderDest sub-tree with fixed punctuation:
// "<street>, <number> - <district>, <city>/<state> - CEP: <postal code>".
func composeAddress(enderDest *element) (string, error) {
	street, err := requiredText(enderDest, "enderDest", "xLgr")
	if err != nil {
		return "", err
	}
	number, err := requiredText(enderDest, "enderDest", "nro")
	if err != nil {
		return "", err
	}
	district, err := requiredText(enderDest, "enderDest", "xBairro")
	if err != nil {
		return "", err
	}
	city, err := requiredText(enderDest, "enderDest", "xMun")
	if err != nil {
		return "", err
	}
	state, err := requiredText(enderDest, "enderDest", "UF")
	if err != nil {
		return "", err
	}
	postalCode, err := requiredText(enderDest, "enderDest", "CEP")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s, %s - %s, %s/%s - CEP: %s",
		street, number, district, city, state, postalCode), nil
}
