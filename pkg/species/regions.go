package species

// RegionMapping ties a raw region name, as the API reports it, to the
// canonical short name used as an output column.
type RegionMapping struct {
	Raw       string
	Canonical string
}

// Regions is the fixed mapping from raw API region names to canonical
// short names. Its order defines the order of the region columns in the
// final table; every simplified row has exactly one 0/1 value per entry.
var Regions = []RegionMapping{
	{"Araucania Region", "Araucanía"},
	{"Maule Region", "Maule"},
	{"Atacama Region", "Atacama"},
	{"Antofagasta Region", "Antofagasta"},
	{"Juan Fernández Archipelago", "Juan Fernández"},
	{"Tarapaca Region", "Tarapacá"},
	{"Santiago Metropolitan Region", "Metropolitana"},
	{"Liberator General Bernardo O'Higgins Region", "Libertador Bernardo O'Higgins"},
	{"Arica and Parinacota Region", "Arica y Parinacota"},
	{"River Region", "Los Ríos"},
	{"Ñuble Region", "Ñuble"},
	{"Coquimbo Region", "Coquimbo"},
	{"Los Lagos Region", "Los Lagos"},
	{"Magallanes and Chilean Antarctic Region", "Magallanes"},
	{"Bio Bio Region", "Bío-Bío"},
	{"Valparaiso Region", "Valparaíso"},
	{"Region of Aysén del General Carlos Ibáñez del Campo", "Aysén"},
}

// RegionColumns returns the canonical region names in column order.
func RegionColumns() []string {
	res := make([]string, len(Regions))
	for i, r := range Regions {
		res[i] = r.Canonical
	}
	return res
}
