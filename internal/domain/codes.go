package domain

// CodeTable traduce etiquetas legibles a los codigos canonicos del modelo.
// Las etiquetas desconocidas se devuelven sin cambios.
type CodeTable struct {
	codes  map[string]string
	labels map[string]string
}

func newCodeTable(pairs ...[2]string) CodeTable {
	t := CodeTable{
		codes:  make(map[string]string, len(pairs)),
		labels: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		t.codes[p[0]] = p[1]
		t.labels[p[1]] = p[0]
	}
	return t
}

// Code devuelve el codigo para label, o label si no esta en la tabla.
func (t CodeTable) Code(label string) string {
	if code, ok := t.codes[label]; ok {
		return code
	}
	return label
}

// Label es la inversa de Code para las entradas definidas.
func (t CodeTable) Label(code string) (string, bool) {
	label, ok := t.labels[code]
	return label, ok
}

// Labels lista las etiquetas conocidas.
func (t CodeTable) Labels() []string {
	out := make([]string, 0, len(t.codes))
	for label := range t.codes {
		out = append(out, label)
	}
	return out
}

var (
	ChestPainTypes = newCodeTable(
		[2]string{"Typical Angina", "TA"},
		[2]string{"Atypical Angina", "ATA"},
		[2]string{"Non-Anginal Pain", "NAP"},
		[2]string{"Asymptomatic", "ASY"},
	)

	// "Normal" se mapea a si mismo; se deja explicito para que Label("Normal") funcione.
	RestingECGs = newCodeTable(
		[2]string{"Normal", "Normal"},
		[2]string{"ST-T Wave Abnormality", "ST"},
		[2]string{"Left Ventricular Hypertrophy", "LVH"},
	)

	STSlopes = newCodeTable(
		[2]string{"Upsloping", "Up"},
		[2]string{"Flat", "Flat"},
		[2]string{"Downsloping", "Down"},
	)
)
