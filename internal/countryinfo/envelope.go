package countryinfo

import "encoding/xml"

// SOAP method names exposed by CountryInfoService.
const (
	methodListCodes       = "ListOfCountryNamesByCode"
	methodFullCountryInfo = "FullCountryInfo"
)

// requestEnvelope is the body template for both calls. The first %s is the
// method name, the second its parameter elements, the third the method again.
const requestEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <%s xmlns="http://www.oorsprong.org/websamples.countryinfo">%s</%s>
  </soap:Body>
</soap:Envelope>`

// notFoundMarker is the sName the service returns for unassigned codes.
const notFoundMarker = "Country not found in the database"

type listCodesResponse struct {
	XMLName   xml.Name           `xml:"Envelope"`
	Countries []codeAndNameEntry `xml:"Body>ListOfCountryNamesByCodeResponse>ListOfCountryNamesByCodeResult>tCountryCodeAndName"`
}

type codeAndNameEntry struct {
	ISOCode string `xml:"sISOCode"`
	Name    string `xml:"sName"`
}

type fullCountryInfoResponse struct {
	XMLName xml.Name              `xml:"Envelope"`
	Result  fullCountryInfoResult `xml:"Body>FullCountryInfoResponse>FullCountryInfoResult"`
}

type fullCountryInfoResult struct {
	ISOCode       string          `xml:"sISOCode"`
	Name          string          `xml:"sName"`
	CapitalCity   string          `xml:"sCapitalCity"`
	PhoneCode     string          `xml:"sPhoneCode"`
	ContinentCode string          `xml:"sContinentCode"`
	CurrencyCode  string          `xml:"sCurrencyISOCode"`
	CountryFlag   string          `xml:"sCountryFlag"`
	Languages     []languageEntry `xml:"Languages>tLanguage"`
}

type languageEntry struct {
	ISOCode string `xml:"sISOCode"`
	Name    string `xml:"sName"`
}
