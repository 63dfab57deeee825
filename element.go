/*
 * element.go, part of dumm.
 *
 * Copyright 2024 The dumm authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dumm

// Element holds periodic-table data: atomic number, mass in daltons, the
// element's symbol and full name, and a default display color (RGB,
// 0-1) inherited for atoms that don't set their own.
type Element struct {
	AtomicNumber int
	Symbol       string
	Name         string
	Mass         float64 // daltons
	DefaultColor [3]float64
}

func (e Element) isValid() bool {
	return e.AtomicNumber > 0 && e.Mass > 0
}

var (
	colorGray    = [3]float64{0.5, 0.5, 0.5}
	colorGreen   = [3]float64{0, 1, 0}
	colorBlue    = [3]float64{0, 0, 1}
	colorRed     = [3]float64{1, 0, 0}
	colorYellow  = [3]float64{1, 1, 0}
	colorMagenta = [3]float64{1, 0, 1}
)

// ElementTable is a per-instance, append-free periodic table. The
// subsystem constructor populates one independent of any other; there
// is no package-level shared table, so two subsystems never alias each
// other's element data.
type ElementTable struct {
	elements map[int]Element
}

// NewElementTable builds a table covering atomic numbers 1..110, mirroring
// the reference implementation's static table.
func NewElementTable() *ElementTable {
	t := &ElementTable{elements: make(map[int]Element, 110)}
	add := func(n int, sym, name string, mass float64, color ...[3]float64) {
		c := colorGray
		if len(color) > 0 {
			c = color[0]
		}
		t.elements[n] = Element{AtomicNumber: n, Symbol: sym, Name: name, Mass: mass, DefaultColor: c}
	}
	add(1, "H", "hydrogen", 1.007947, colorGreen)
	add(2, "He", "helium", 4.003)
	add(3, "Li", "lithium", 6.941)
	add(4, "Be", "beryllium", 9.012)
	add(5, "B", "boron", 10.811)
	add(6, "C", "carbon", 12.01078, colorGray)
	add(7, "N", "nitrogen", 14.00672, colorBlue)
	add(8, "O", "oxygen", 15.99943, colorRed)
	add(9, "F", "fluorine", 18.998)
	add(10, "Ne", "neon", 20.180)
	add(11, "Na", "sodium", 22.989769282)
	add(12, "Mg", "magnesium", 24.30506)
	add(13, "Al", "aluminum", 26.982)
	add(14, "Si", "silicon", 28.086)
	add(15, "P", "phosphorus", 30.9737622, colorMagenta)
	add(16, "S", "sulfur", 32.0655, colorYellow)
	add(17, "Cl", "chlorine", 35.4532)
	add(18, "Ar", "argon", 39.948)
	add(19, "K", "potassium", 39.09831)
	add(20, "Ca", "calcium", 40.0784)
	add(21, "Sc", "scandium", 44.956)
	add(22, "Ti", "titanium", 47.88)
	add(23, "V", "vanadium", 50.942)
	add(24, "Cr", "chromium", 51.996)
	add(25, "Mn", "manganese", 54.9380455)
	add(26, "Fe", "iron", 55.8452)
	add(27, "Co", "cobalt", 58.9331955)
	add(28, "Ni", "nickel", 58.69342)
	add(29, "Cu", "copper", 63.5463)
	add(30, "Zn", "zinc", 65.4094)
	add(31, "Ga", "gallium", 69.723)
	add(32, "Ge", "germanium", 72.61)
	add(33, "As", "arsenic", 74.922)
	add(34, "Se", "selenium", 78.963)
	add(35, "Br", "bromine", 79.9041)
	add(36, "Kr", "krypton", 83.80)
	add(37, "Rb", "rubidium", 85.468)
	add(38, "Sr", "strontium", 87.62)
	add(39, "Y", "yttrium", 88.906)
	add(40, "Zr", "zirconium", 91.224)
	add(41, "Nb", "niobium", 92.906)
	add(42, "Mo", "molybdenum", 95.94)
	add(43, "Tc", "technetium", 97.907)
	add(44, "Ru", "ruthenium", 101.07)
	add(45, "Rh", "rhodium", 102.906)
	add(46, "Pd", "palladium", 106.42)
	add(47, "Ag", "silver", 107.868)
	add(48, "Cd", "cadmium", 112.411)
	add(49, "In", "indium", 114.82)
	add(50, "Sn", "tin", 118.710)
	add(51, "Sb", "antimony", 121.757)
	add(52, "Te", "tellurium", 127.60)
	add(53, "I", "iodine", 126.904)
	add(54, "Xe", "xenon", 131.290)
	add(55, "Cs", "cesium", 132.905)
	add(56, "Ba", "barium", 137.327)
	add(57, "La", "lanthanum", 138.906)
	add(58, "Ce", "cerium", 140.115)
	add(59, "Pr", "praseodymium", 140.908)
	add(60, "Nd", "neodymium", 144.24)
	add(61, "Pm", "promethium", 144.913)
	add(62, "Sm", "samarium", 150.36)
	add(63, "Eu", "europium", 151.965)
	add(64, "Gd", "gadolinium", 157.25)
	add(65, "Tb", "terbium", 158.925)
	add(66, "Dy", "dysprosium", 162.50)
	add(67, "Ho", "holmium", 164.930)
	add(68, "Er", "erbium", 167.26)
	add(69, "Tm", "thulium", 168.934)
	add(70, "Yb", "ytterbium", 173.04)
	add(71, "Lu", "lutetium", 174.967)
	add(72, "Hf", "hafnium", 178.49)
	add(73, "Ta", "tantalum", 180.948)
	add(74, "W", "tungsten", 183.84)
	add(75, "Re", "rhenium", 186.207)
	add(76, "Os", "osmium", 190.2)
	add(77, "Ir", "iridium", 192.22)
	add(78, "Pt", "platinum", 195.08)
	add(79, "Au", "gold", 196.967, colorYellow)
	add(80, "Hg", "mercury", 200.59)
	add(81, "Tl", "thallium", 204.383)
	add(82, "Pb", "lead", 207.2)
	add(83, "Bi", "bismuth", 208.980)
	add(84, "Po", "polonium", 208.982)
	add(85, "At", "astatine", 209.978)
	add(86, "Rn", "radon", 222.018)
	add(87, "Fr", "francium", 223.020)
	add(88, "Ra", "radium", 226.025)
	add(89, "Ac", "actinium", 227.028)
	add(90, "Th", "thorium", 232.038)
	add(91, "Pa", "protactinium", 231.038)
	add(92, "U", "uranium", 238.028913)
	add(93, "Np", "neptunium", 237.048)
	add(94, "Pu", "plutonium", 244.064)
	add(95, "Am", "americium", 243.061)
	add(96, "Cm", "curium", 247.070)
	add(97, "Bk", "berkelium", 247.070)
	add(98, "Cf", "californium", 251.080)
	add(99, "Es", "einsteinium", 252.083)
	add(100, "Fm", "fermium", 257.095)
	add(101, "Md", "mendelevium", 258.099)
	add(102, "No", "nobelium", 259.101)
	add(103, "Lr", "lawrencium", 260.105)
	add(104, "Rf", "rutherfordium", 261)
	add(105, "Db", "dubnium", 262)
	add(106, "Sg", "seaborgium", 263)
	add(107, "Bh", "bohrium", 262)
	add(108, "Hs", "hassium", 265)
	add(109, "Mt", "meitnerium", 266)
	add(110, "Ds", "darmstadtium", 281)
	return t
}

// Get returns the element for an atomic number, and whether it exists
// and is valid.
func (t *ElementTable) Get(atomicNumber int) (Element, bool) {
	e, ok := t.elements[atomicNumber]
	return e, ok && e.isValid()
}
