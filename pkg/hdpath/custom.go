package hdpath

import "encoding/binary"

// CustomHDPath 是任意长度（最多 255 段）的通用路径容器，
// 路径段可以按任意顺序混合普通段与强化段。顺序代表自父向子的派生顺序，
// 构造之后只读。
//
// 如果只需要 m/44'/0'/0'/0/0 这类标准形状，优先使用 StandardHDPath。
type CustomHDPath struct {
	values []PathValue
}

// NewCustom 从路径段序列构造通用路径。
// 仅当段数超过 255（BIP-32 用单字节表示深度）时返回 InvalidLengthError。
func NewCustom(values []PathValue) (*CustomHDPath, error) {
	if len(values) > 0xff {
		return nil, &InvalidLengthError{Len: len(values)}
	}
	copied := make([]PathValue, len(values))
	copy(copied, values)
	return &CustomHDPath{values: copied}, nil
}

// 扫描器状态。解析是对字节流自左向右的单趟扫描，没有回溯。
const (
	stateExpectNum  = iota // 期待数字
	stateReadingNum        // 正在累积数字
	stateReadMarker        // 刚读到强化标记，只能接 / 或结束
)

// ParseCustom 解析文本形式的路径，如 m/44'/0'/1'/0/0。
// 同时支持大写前缀与 H/h 强化标记（M/44H/0H/1H/0/0），输出时统一规范为 '。
//
// 语法错误返回 ErrInvalidFormat；语法正确但没有任何路径段时返回
// ErrInvalidStructure。
func ParseCustom(s string) (*CustomHDPath, error) {
	chars := []byte(s)
	if len(chars) < 2 {
		return nil, ErrInvalidFormat
	}
	if chars[0] != 'm' && chars[0] != 'M' {
		return nil, ErrInvalidFormat
	}
	if chars[1] != '/' {
		return nil, ErrInvalidFormat
	}

	var keys []PathValue
	var num uint32
	state := stateExpectNum
	for pos := 2; pos < len(chars); pos++ {
		switch c := chars[pos]; {
		case c == '\'' || c == 'H' || c == 'h':
			if state != stateReadingNum {
				return nil, ErrInvalidFormat
			}
			// 范围检查在段闭合时进行，累积本身不做溢出保护
			if !IsValidValue(num) {
				return nil, ErrInvalidFormat
			}
			keys = append(keys, PathValue{value: num, hardened: true})
			state = stateReadMarker
			num = 0
		case c == '/':
			if state == stateReadingNum {
				if !IsValidValue(num) {
					return nil, ErrInvalidFormat
				}
				keys = append(keys, PathValue{value: num})
			} else if state != stateReadMarker {
				return nil, ErrInvalidFormat
			}
			state = stateExpectNum
			num = 0
		case c >= '0' && c <= '9':
			if state == stateExpectNum {
				state = stateReadingNum
			} else if state != stateReadingNum {
				return nil, ErrInvalidFormat
			}
			num = num*10 + uint32(c-'0')
		default:
			return nil, ErrInvalidFormat
		}
		if pos == len(chars)-1 && state == stateReadingNum {
			// 输入结束时尚在数字中，按普通段闭合
			if !IsValidValue(num) {
				return nil, ErrInvalidFormat
			}
			keys = append(keys, PathValue{value: num})
		}
	}
	if state == stateExpectNum {
		// 以斜杠结尾，或 "m/" 之后没有内容
		return nil, ErrInvalidFormat
	}
	if len(keys) == 0 {
		return nil, ErrInvalidStructure
	}
	if len(keys) > 0xff {
		return nil, &InvalidLengthError{Len: len(keys)}
	}
	return &CustomHDPath{values: keys}, nil
}

// CustomFromBytes 解码二进制形式（布局见 ToBytes）。
// 字节长度与首字节声明的段数不符时返回 ErrInvalidFormat。
// 每个 4 字节原始值本身总能解码成路径段，形状校验由固定形状类型负责。
func CustomFromBytes(buf []byte) (*CustomHDPath, error) {
	if len(buf) < 1 {
		return nil, ErrInvalidFormat
	}
	count := int(buf[0])
	if len(buf) != 1+4*count {
		return nil, ErrInvalidFormat
	}
	values := make([]PathValue, count)
	for i := 0; i < count; i++ {
		values[i] = FromRaw(binary.BigEndian.Uint32(buf[1+4*i:]))
	}
	return &CustomHDPath{values: values}, nil
}

// CustomFromHDPath 把任意路径类型物化为通用容器
func CustomFromHDPath(path HDPath) *CustomHDPath {
	n := path.Len()
	values := make([]PathValue, 0, n)
	for i := uint8(0); i < n; i++ {
		pv, _ := path.Get(i)
		values = append(values, pv)
	}
	return &CustomHDPath{values: values}
}

func (c *CustomHDPath) Len() uint8 {
	return uint8(len(c.values))
}

func (c *CustomHDPath) Get(pos uint8) (PathValue, bool) {
	if int(pos) >= len(c.values) {
		return PathValue{}, false
	}
	return c.values[pos], true
}

// Values 返回路径段序列的副本
func (c *CustomHDPath) Values() []PathValue {
	out := make([]PathValue, len(c.values))
	copy(out, c.values)
	return out
}

func (c *CustomHDPath) String() string {
	return FormatPath(c)
}
