// 离线预览学习计划，不连接数据库
//
// 读取一个 YAML 场景文件（科目、空闲时段、精力分数、答题记录、掌握度），
// 使用 configs/catalog.yaml 的课程目录生成计划并以 JSON 输出。
//
// 用法: go run scripts/plan_preview.go -scenario scripts/scenario.example.yaml

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"neuro_study_backend/internal/engine"

	"gopkg.in/yaml.v3"
)

type scenario struct {
	Date        string               `yaml:"date"`
	Subjects    []string             `yaml:"subjects"`
	FreeSlots   []string             `yaml:"free_slots"`
	EnergyScore int                  `yaml:"energy_score"`
	Events      []engine.AnswerEvent `yaml:"events"`
	Mastery     map[string]float64   `yaml:"mastery"`
	Preferences *engine.Preferences  `yaml:"preferences"`
}

func main() {
	scenarioPath := flag.String("scenario", "scripts/scenario.example.yaml", "场景文件")
	catalogPath := flag.String("catalog", "configs/catalog.yaml", "课程目录文件，留空使用内置目录")
	flag.Parse()

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("无法读取场景文件: %v", err)
	}

	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		log.Fatalf("解析场景文件失败: %v", err)
	}

	catalog := engine.DefaultCatalog()
	if *catalogPath != "" {
		catalog, err = engine.LoadCatalogFile(*catalogPath)
		if err != nil {
			log.Fatalf("加载课程目录失败: %v", err)
		}
	}

	builder := engine.NewBuilder(engine.BuilderConfig{Catalog: catalog})
	plan, err := builder.Build(engine.BuildRequest{
		Date:        sc.Date,
		Subjects:    sc.Subjects,
		FreeWindows: sc.FreeSlots,
		Events:      sc.Events,
		EnergyScore: sc.EnergyScore,
		Mastery:     sc.Mastery,
		Preferences: sc.Preferences,
	})
	if err != nil {
		log.Fatalf("生成计划失败: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		log.Fatalf("输出失败: %v", err)
	}
}
