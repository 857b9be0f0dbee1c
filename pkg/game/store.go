package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// loadProp 读取 gdata 属性并按 YAML 解码到 out
// manager 为 nil 或属性不存在时返回 false
func loadProp(manager *gdata.Manager, object, property string, out any) (bool, error) {
	if manager == nil || !manager.ObjectPropExists(object, property) {
		return false, nil
	}
	raw, err := manager.LoadObjectProp(object, property)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", object, property, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, property, err)
	}
	return true, nil
}

// saveProp 按 YAML 编码后写入 gdata，manager 为 nil 时什么也不做
func saveProp(manager *gdata.Manager, object, property string, in any) error {
	if manager == nil {
		return nil
	}
	raw, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, property, err)
	}
	if err := manager.SaveObjectProp(object, property, raw); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, property, err)
	}
	return nil
}
