package svd

import "encoding/xml"

type DeviceElement struct {
	Name             string             `xml:"name" json:"name"`
	Description      string             `xml:"description" json:"description"`
	Series           string             `xml:"series" json:"series,omitempty"`
	Version          string             `xml:"version" json:"version"`
	Vendor           string             `xml:"vendor" json:"vendor,omitempty"`
	VendorId         string             `xml:"vendorId" json:"vendor_id,omitempty"`
	CPU              CPUElement         `xml:"cpu" json:"cpu"`
	AddressableWidth Integer            `xml:"addressUnitBits" json:"address_unit_bits"`
	BitWidth         Integer            `xml:"width" json:"width"`
	RegisterSize     Integer            `xml:"size" json:"size"`
	DefaultAccess    string             `xml:"access" json:"access,omitempty"`
	ResetValue       Integer            `xml:"resetValue" json:"reset_value"`
	ResetMask        Integer            `xml:"resetMask" json:"reset_mask"`
	Peripherals      PeripheralsElement `xml:"peripherals" json:"peripherals"`
}

type CPUElement struct {
	Name                string  `xml:"name" json:"name"`
	Revision            string  `xml:"revision" json:"revision"`
	Endian              string  `xml:"endian" json:"endian"`
	MPUPresent          string  `xml:"mpuPresent" json:"mpu_present"`
	FPUPresent          string  `xml:"fpuPresent" json:"fpu_present"`
	NVICPriorityBits    Integer `xml:"nvicPrioBits" json:"nvic_prio_bits"`
	VendorSystickConfig bool    `xml:"vendorSystickConfig" json:"vendor_systick_config"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral" json:"peripheral"`
}

func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name         string              `xml:"name" json:"name"`
	Description  string              `xml:"description" json:"description,omitempty"`
	Group        string              `xml:"groupName" json:"group_name,omitempty"`
	BaseAddress  Integer             `xml:"baseAddress" json:"base_address"`
	AddressBlock AddressBlockElement `xml:"addressBlock" json:"address_block"`
	Interrupts   []InterruptElement  `xml:"interrupt" json:"interrupts,omitempty"`
	Registers    RegistersElement    `xml:"registers" json:"registers"`
	DerivedFrom  string              `xml:"derivedFrom,attr" json:"derived_from,omitempty"`
}

type AddressBlockElement struct {
	Offset Integer `xml:"offset" json:"offset"`
	Size   Integer `xml:"size" json:"size"`
	Usage  string  `xml:"usage" json:"usage,omitempty"`
}

type InterruptElement struct {
	Name        string  `xml:"name" json:"name"`
	Description string  `xml:"description" json:"description,omitempty"`
	Value       Integer `xml:"value" json:"value"`
}

type RegistersElement struct {
	Elements []RegisterElement `xml:"register" json:"register,omitempty"`
}

type RegisterElement struct {
	Name          string        `xml:"name" json:"name"`
	Description   string        `xml:"description" json:"description,omitempty"`
	AddressOffset Integer       `xml:"addressOffset" json:"address_offset"`
	Size          Integer       `xml:"size" json:"size"`
	Access        string        `xml:"access" json:"access,omitempty"`
	ResetValue    Integer       `xml:"resetValue" json:"reset_value"`
	Fields        FieldElements `xml:"fields" json:"fields"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field" json:"field,omitempty"`
}

type FieldElement struct {
	Name        string  `xml:"name" json:"name"`
	Description string  `xml:"description" json:"description,omitempty"`
	LSB         Integer `xml:"lsb" json:"lsb"`
	MSB         Integer `xml:"msb" json:"msb"`
	BitOffset   Integer `xml:"bitOffset" json:"bit_offset"`
	BitWidth    Integer `xml:"bitWidth" json:"bit_width"`
	Access      string  `xml:"access" json:"access,omitempty"`
}

// Parse decodes a raw SVD document into its device model.
func Parse(buf []byte) (DeviceElement, error) {
	var device DeviceElement
	if err := xml.Unmarshal(buf, &device); err != nil {
		return DeviceElement{}, err
	}
	return device, nil
}
