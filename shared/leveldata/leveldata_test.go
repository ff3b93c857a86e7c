package leveldata

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="3">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <tile id="0">
   <properties>
    <property name="surface" value="stone"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="surface" value="glass"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,2,
0,0,0,2,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="8" y="32"/>
 </objectgroup>
 <objectgroup id="3" name="FinishLine">
  <object id="2" x="32" y="0" width="16" height="32"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/01-intro.tmx": {Data: []byte(testTMX)},
		"levels/02-walls.tmx": {Data: []byte(testTMX)},
		"levels/readme.txt":   {Data: []byte("not a level")},
	}
}

func TestLoad(t *testing.T) {
	level, err := Load(testFS(), "levels/01-intro.tmx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if level.Name != "01-intro" || level.MapWidth != 64 || level.MapHeight != 48 {
		t.Errorf("level = %q %dx%d", level.Name, level.MapWidth, level.MapHeight)
	}
	if len(level.Solids) != 6 {
		t.Fatalf("solids = %d, want 6", len(level.Solids))
	}

	surfaces := map[string]int{}
	for _, s := range level.Solids {
		surfaces[s.Surface]++
	}
	if surfaces["glass"] != 2 || surfaces["stone"] != 4 {
		t.Errorf("surfaces = %v", surfaces)
	}
	if got := level.Solids[0]; got != (SolidRect{X: 48, Y: 0, W: 16, H: 16, Surface: "glass"}) {
		t.Errorf("first solid = %+v", got)
	}

	if sp := level.Spawn(); sp.X != 8 || sp.Y != 32 {
		t.Errorf("spawn = %+v", sp)
	}
	if len(level.FinishLines) != 1 || level.FinishLines[0] != (Rect{X: 32, W: 16, H: 32}) {
		t.Errorf("finish lines = %+v", level.FinishLines)
	}
}

func TestLoadMissingGroundLayer(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": {Data: []byte(strings.Replace(testTMX, `name="ground"`, `name="decor"`, 1))},
	}
	if _, err := Load(fsys, "bad.tmx"); err == nil {
		t.Fatal("expected an error for a level without a ground layer")
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"01-intro", "02-walls"}) {
		t.Errorf("names = %v", names)
	}
	if levels["02-walls"] == nil {
		t.Error("missing 02-walls")
	}

	if _, _, err := LoadAllLevels(testFS(), "nowhere"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(7, 16)
	b := Generate(7, 16)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different levels")
	}
}

func TestGenerateLayout(t *testing.T) {
	level := Generate(42, 16)

	occupied := map[[2]int]string{}
	for _, s := range level.Solids {
		occupied[[2]int{int(s.X) / 16, int(s.Y) / 16}] = s.Surface
	}

	glass := 0
	for _, surface := range occupied {
		if surface == "glass" {
			glass++
		}
	}
	if glass == 0 {
		t.Error("no glass pillars")
	}

	// tunnel: roof one tile above the ground
	col := tunnelStart + 1
	if occupied[[2]int{col, practiceBase}] == "" {
		t.Error("no ground under the tunnel")
	}
	if occupied[[2]int{col, practiceBase - 1}] != "" {
		t.Error("tunnel is blocked")
	}
	if occupied[[2]int{col, practiceBase - 2}] == "" {
		t.Error("tunnel has no roof")
	}
	if TunnelClearance(16) != 16 {
		t.Errorf("clearance = %v", TunnelClearance(16))
	}

	sp := level.Spawn()
	spawnCol, spawnRow := int(sp.X)/16, int(sp.Y)/16
	if occupied[[2]int{spawnCol, spawnRow}] == "" {
		t.Error("spawn is not standing on ground")
	}
	if occupied[[2]int{spawnCol, spawnRow - 1}] != "" || occupied[[2]int{spawnCol, spawnRow - 2}] != "" {
		t.Error("spawn is inside a solid")
	}

	if len(level.FinishLines) != 1 {
		t.Fatalf("finish lines = %d", len(level.FinishLines))
	}
	if f := level.FinishLines[0]; f.X+f.W > float64(level.MapWidth) {
		t.Errorf("finish line outside the map: %+v", f)
	}
}
