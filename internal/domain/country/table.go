package country

// defaultRefs lists the nations that appear in Winter Games standings and
// winners tables, plus the alternate spellings the sources use. One entry
// per recognized name; aliases repeat the code and flag.
var defaultRefs = []Ref{
	{Name: "Norway", Flag: "🇳🇴", Code: "NOR"},
	{Name: "Germany", Flag: "🇩🇪", Code: "GER"},
	{Name: "United States", Flag: "🇺🇸", Code: "USA"},
	{Name: "Canada", Flag: "🇨🇦", Code: "CAN"},
	{Name: "Netherlands", Flag: "🇳🇱", Code: "NED"},
	{Name: "Austria", Flag: "🇦🇹", Code: "AUT"},
	{Name: "Italy", Flag: "🇮🇹", Code: "ITA"},
	{Name: "France", Flag: "🇫🇷", Code: "FRA"},
	{Name: "Switzerland", Flag: "🇨🇭", Code: "SUI"},
	{Name: "Sweden", Flag: "🇸🇪", Code: "SWE"},
	{Name: "Japan", Flag: "🇯🇵", Code: "JPN"},
	{Name: "China", Flag: "🇨🇳", Code: "CHN"},
	{Name: "South Korea", Flag: "🇰🇷", Code: "KOR"},
	{Name: "Finland", Flag: "🇫🇮", Code: "FIN"},
	{Name: "Great Britain", Flag: "🇬🇧", Code: "GBR"},
	{Name: "Czech Republic", Flag: "🇨🇿", Code: "CZE"},
	{Name: "Czechia", Flag: "🇨🇿", Code: "CZE"},
	{Name: "Slovenia", Flag: "🇸🇮", Code: "SLO"},
	{Name: "Slovakia", Flag: "🇸🇰", Code: "SVK"},
	{Name: "Poland", Flag: "🇵🇱", Code: "POL"},
	{Name: "Spain", Flag: "🇪🇸", Code: "ESP"},
	{Name: "Belgium", Flag: "🇧🇪", Code: "BEL"},
	{Name: "Australia", Flag: "🇦🇺", Code: "AUS"},
	{Name: "New Zealand", Flag: "🇳🇿", Code: "NZL"},
	{Name: "Hungary", Flag: "🇭🇺", Code: "HUN"},
	{Name: "Latvia", Flag: "🇱🇻", Code: "LAT"},
	{Name: "Estonia", Flag: "🇪🇪", Code: "EST"},
	{Name: "Lithuania", Flag: "🇱🇹", Code: "LTU"},
	{Name: "Ukraine", Flag: "🇺🇦", Code: "UKR"},
	{Name: "Kazakhstan", Flag: "🇰🇿", Code: "KAZ"},
	{Name: "Denmark", Flag: "🇩🇰", Code: "DEN"},
	{Name: "Croatia", Flag: "🇭🇷", Code: "CRO"},
	{Name: "Romania", Flag: "🇷🇴", Code: "ROU"},
	{Name: "Bulgaria", Flag: "🇧🇬", Code: "BUL"},
	{Name: "Greece", Flag: "🇬🇷", Code: "GRE"},
	{Name: "Ireland", Flag: "🇮🇪", Code: "IRL"},
	{Name: "Luxembourg", Flag: "🇱🇺", Code: "LUX"},
	{Name: "Liechtenstein", Flag: "🇱🇮", Code: "LIE"},
	{Name: "Andorra", Flag: "🇦🇩", Code: "AND"},
	{Name: "Monaco", Flag: "🇲🇨", Code: "MON"},
	{Name: "San Marino", Flag: "🇸🇲", Code: "SMR"},
	{Name: "Iceland", Flag: "🇮🇸", Code: "ISL"},
	{Name: "Israel", Flag: "🇮🇱", Code: "ISR"},
	{Name: "Turkey", Flag: "🇹🇷", Code: "TUR"},
	{Name: "Türkiye", Flag: "🇹🇷", Code: "TUR"},
	{Name: "Georgia", Flag: "🇬🇪", Code: "GEO"},
	{Name: "Armenia", Flag: "🇦🇲", Code: "ARM"},
	{Name: "Azerbaijan", Flag: "🇦🇿", Code: "AZE"},
	{Name: "Mongolia", Flag: "🇲🇳", Code: "MGL"},
	{Name: "Brazil", Flag: "🇧🇷", Code: "BRA"},
	{Name: "Argentina", Flag: "🇦🇷", Code: "ARG"},
	{Name: "Chile", Flag: "🇨🇱", Code: "CHI"},
	{Name: "Mexico", Flag: "🇲🇽", Code: "MEX"},
	{Name: "India", Flag: "🇮🇳", Code: "IND"},
	{Name: "Chinese Taipei", Flag: "🇹🇼", Code: "TPE"},
	{Name: "Portugal", Flag: "🇵🇹", Code: "POR"},
	{Name: "Serbia", Flag: "🇷🇸", Code: "SRB"},
	{Name: "Bosnia and Herzegovina", Flag: "🇧🇦", Code: "BIH"},
	{Name: "North Macedonia", Flag: "🇲🇰", Code: "MKD"},
	{Name: "Albania", Flag: "🇦🇱", Code: "ALB"},
	{Name: "Moldova", Flag: "🇲🇩", Code: "MDA"},
	{Name: "Uzbekistan", Flag: "🇺🇿", Code: "UZB"},
	{Name: "Kyrgyzstan", Flag: "🇰🇬", Code: "KGZ"},
	{Name: "Thailand", Flag: "🇹🇭", Code: "THA"},
	{Name: "Philippines", Flag: "🇵🇭", Code: "PHI"},
	{Name: "Lebanon", Flag: "🇱🇧", Code: "LBN"},
	{Name: "Morocco", Flag: "🇲🇦", Code: "MAR"},
	{Name: "South Africa", Flag: "🇿🇦", Code: "RSA"},
}
