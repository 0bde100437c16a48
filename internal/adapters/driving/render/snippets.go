package render

import "github.com/custodia-labs/titanic-cli/internal/core/domain"

var snippets = map[domain.Section]string{
	domain.SectionOverview: `df := dataframe.ReadCSV(f)
fmt.Println(df.Subset([]int{0, 1, 2, 3, 4}))
for _, name := range df.Names() {
	col := df.Col(name)
	missing := 0
	for _, na := range col.IsNaN() {
		if na {
			missing++
		}
	}
	fmt.Printf("%-12s %-7s %d missing\n", name, col.Type(), missing)
}`,

	domain.SectionCleaning: `for _, name := range numeric {
	median, _ := stats.Median(present(df.Col(name)))
	df = df.Mutate(fillNA(df.Col(name), median))
}
df = df.Drop("Name")
df = df.Mutate(mapSex(df.Col("Sex"))).Rename("Gender", "Sex")`,

	domain.SectionSurvival: `sums := map[int]float64{}
counts := map[int]int{}
for i := 0; i < df.Nrow(); i++ {
	g, _ := df.Elem(i, gender).Int()
	sums[g] += df.Elem(i, survived).Float()
	counts[g]++
}
// 0: male, 1: female
fmt.Println(sums[0]/float64(counts[0]), sums[1]/float64(counts[1]))`,

	domain.SectionCorrelation: `survivors := df.Filter(dataframe.F{
	Colname: "Survived", Comparator: series.Eq, Comparando: 1,
})
for i, a := range numeric {
	for j, b := range numeric {
		x, y := paired(survivors.Col(a), survivors.Col(b))
		corr[i][j] = stat.Correlation(x, y, nil)
	}
}`,

	domain.SectionAdditional: `bins := int(math.Ceil(math.Log2(float64(len(ages))))) + 1
bw := stat.StdDev(ages, nil) * math.Pow(float64(len(ages)), -0.2)

q1, _ := stats.Quartile(fares)
iqr := q1.Q3 - q1.Q1
fence := [2]float64{q1.Q1 - 1.5*iqr, q1.Q3 + 1.5*iqr}

group, ok := domain.AgeGroupFor(age) // Child, Teenager, Adult, Middle Aged, Elderly`,
}

// Snippet returns the illustrative code for a section.
func Snippet(section domain.Section) string {
	return snippets[section]
}
