package twin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DittoConfig Eclipse Ditto连接配置
type DittoConfig struct {
	URL       string `yaml:"url"`       // 例如 http://localhost:8080
	Username  string `yaml:"username"`  // 默认 ditto
	Password  string `yaml:"password"`  // 默认 ditto
	Namespace string `yaml:"namespace"` // 例如 org.eclipse.ditto
}

// DittoBackend Eclipse Ditto孪生平台后端
// 每个物理实体对应一个Ditto Thing：attributes存静态属性，features存动态状态
type DittoBackend struct {
	baseURL   string
	namespace string
	policyID  string
	username  string
	password  string
	client    *http.Client
}

// NewDittoBackend 探测Ditto可达性并创建后端
// 任何失败（不可达、健康检查非200）都返回错误，由调用方回退到内存后端
func NewDittoBackend(cfg DittoConfig) (*DittoBackend, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("未配置Ditto地址")
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "org.eclipse.ditto"
	}

	b := &DittoBackend{
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		namespace: cfg.Namespace,
		policyID:  cfg.Namespace + ":iov-policy",
		username:  cfg.Username,
		password:  cfg.Password,
		client:    &http.Client{Timeout: 5 * time.Second},
	}

	// 能力探测：只在构造时做一次，之后不再重连
	req, err := http.NewRequest(http.MethodGet, b.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("无法连接Ditto: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Ditto健康检查失败: %d", resp.StatusCode)
	}

	return b, nil
}

// SelectBackend 选择孪生后端：优先Ditto，失败时永久回退到内存后端
// 回退不是错误，构造阶段永不向上抛出失败
func SelectBackend(cfg DittoConfig) Backend {
	ditto, err := NewDittoBackend(cfg)
	if err != nil {
		log.Printf("[DT] Ditto不可用(%v)，回退到内存后端", err)
		return NewMemoryBackend()
	}
	log.Println("[DT] ✓ 已连接Eclipse Ditto")
	if err := ditto.CreatePolicy(); err != nil {
		log.Printf("[DT] 创建策略失败: %v", err)
	}
	return ditto
}

func (b *DittoBackend) Name() string {
	return "Eclipse Ditto"
}

// CreatePolicy 创建允许完整CRUD的IoV策略，已存在视为成功
func (b *DittoBackend) CreatePolicy() error {
	policy := map[string]interface{}{
		"policyId": b.policyID,
		"entries": map[string]interface{}{
			"owner": map[string]interface{}{
				"subjects": map[string]interface{}{
					"nginx:ditto": map[string]interface{}{"type": "nginx basic auth user"},
				},
				"resources": map[string]interface{}{
					"thing:/":   map[string]interface{}{"grant": []string{"READ", "WRITE"}, "revoke": []string{}},
					"policy:/":  map[string]interface{}{"grant": []string{"READ", "WRITE"}, "revoke": []string{}},
					"message:/": map[string]interface{}{"grant": []string{"READ", "WRITE"}, "revoke": []string{}},
				},
			},
		},
	}

	status, _, err := b.do(http.MethodPut, "/api/2/policies/"+b.policyID, policy)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated ||
		status == http.StatusNoContent || status == http.StatusConflict {
		return nil
	}
	return fmt.Errorf("创建策略返回 %d", status)
}

func (b *DittoBackend) CreateThing(id string, attributes, features map[string]interface{}) error {
	fullID := b.namespace + ":" + id
	thing := map[string]interface{}{
		"thingId":    fullID,
		"policyId":   b.policyID,
		"attributes": attributes,
		"features":   features,
	}

	status, _, err := b.do(http.MethodPut, "/api/2/things/"+fullID, thing)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated ||
		status == http.StatusNoContent || status == http.StatusConflict {
		return nil
	}
	return fmt.Errorf("创建Thing %s 返回 %d", id, status)
}

func (b *DittoBackend) UpdateFeatures(id string, features map[string]interface{}) error {
	fullID := b.namespace + ":" + id
	status, _, err := b.do(http.MethodPut, "/api/2/things/"+fullID+"/features", features)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusCreated || status == http.StatusNoContent {
		return nil
	}
	return fmt.Errorf("更新Thing %s 特征返回 %d", id, status)
}

func (b *DittoBackend) GetThing(id string) (*Thing, bool) {
	fullID := b.namespace + ":" + id
	status, body, err := b.do(http.MethodGet, "/api/2/things/"+fullID, nil)
	if err != nil || status != http.StatusOK {
		return nil, false
	}

	var thing Thing
	if err := json.Unmarshal(body, &thing); err != nil {
		return nil, false
	}
	// 对外隐藏命名空间前缀
	thing.ThingID = strings.TrimPrefix(thing.ThingID, b.namespace+":")
	return &thing, true
}

func (b *DittoBackend) DeleteThing(id string) error {
	fullID := b.namespace + ":" + id
	status, _, err := b.do(http.MethodDelete, "/api/2/things/"+fullID, nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK || status == http.StatusNoContent {
		return nil
	}
	return fmt.Errorf("删除Thing %s 返回 %d", id, status)
}

func (b *DittoBackend) ListThings() []string {
	status, body, err := b.do(http.MethodGet, "/api/2/search/things", nil)
	if err != nil || status != http.StatusOK {
		return nil
	}

	var result struct {
		Items []struct {
			ThingID string `json:"thingId"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, strings.TrimPrefix(item.ThingID, b.namespace+":"))
	}
	return ids
}

// do 执行一次HTTP请求并返回状态码和响应体
func (b *DittoBackend) do(method, path string, payload interface{}) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	u, err := url.Parse(b.baseURL + path)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(method, u.String(), reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.username != "" {
		req.SetBasicAuth(b.username, b.password)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
